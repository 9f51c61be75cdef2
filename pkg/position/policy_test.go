package position

import "testing"

func TestBasePolicy(t *testing.T) {
	var p BasePolicy
	if got := p.DefaultPosition(Context{}); got != Bottom {
		t.Errorf("position = %s, want bottom", got)
	}
	tests := []struct {
		pos  Position
		rtl  bool
		want Alignment
	}{
		{Bottom, false, AlignLeft},
		{Bottom, true, AlignRight},
		{Top, true, AlignRight},
		{Left, false, AlignBottom},
		{Right, true, AlignBottom},
	}
	for _, tt := range tests {
		if got := p.DefaultAlignment(Context{RTL: tt.rtl}, tt.pos); got != tt.want {
			t.Errorf("DefaultAlignment(%s, rtl=%v) = %s, want %s", tt.pos, tt.rtl, got, tt.want)
		}
	}
}

func TestDropdownPolicyClassHints(t *testing.T) {
	var p DropdownPolicy
	ctx := Context{
		ElementClasses: []string{"dropdown-pane", "top"},
		AnchorClasses:  []string{"button", "float-right"},
	}
	if got := p.DefaultPosition(ctx); got != Top {
		t.Errorf("position = %s, want top", got)
	}
	if got := p.DefaultAlignment(ctx, Top); got != AlignRight {
		t.Errorf("alignment = %s, want right", got)
	}
	// float-right is meaningless beside the anchor; fall back.
	if got := p.DefaultAlignment(ctx, Left); got != AlignBottom {
		t.Errorf("alignment for left = %s, want bottom", got)
	}
	if got := p.DefaultPosition(Context{ElementClasses: []string{"dropdown-pane"}}); got != Bottom {
		t.Errorf("position without hint = %s, want bottom", got)
	}
	if got := p.DefaultAlignment(Context{AnchorClasses: []string{"float-sideways"}, RTL: true}, Bottom); got != AlignRight {
		t.Errorf("alignment with bad hint = %s, want rtl default right", got)
	}
}

func TestTooltipPolicy(t *testing.T) {
	var p TooltipPolicy
	if p.DefaultPosition(Context{}) != Top || p.DefaultAlignment(Context{}, Top) != AlignCenter {
		t.Error("tooltips default to top/center")
	}
}

func TestOptionsValidate(t *testing.T) {
	if err := DefaultOptions().Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
	if err := (Options{Position: Left, Alignment: AlignCenter}).Validate(); err != nil {
		t.Errorf("left/center invalid: %v", err)
	}
	if err := (Options{Position: Left, Alignment: AlignLeft}).Validate(); err == nil {
		t.Error("left/left accepted")
	}
}
