package key

import "testing"

func TestModifierString(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModShift, "Shift"},
		{ModShift | ModCtrl, "Ctrl+Shift"},
		{ModMeta | ModAlt | ModCtrl, "Ctrl+Alt+Meta"},
	}
	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("Modifier(%d).String() = %q, want %q", tt.mod, got, tt.want)
		}
	}
}

func TestModifierFromName(t *testing.T) {
	tests := []struct {
		name string
		want Modifier
	}{
		{"ctrl", ModCtrl},
		{"CONTROL", ModCtrl},
		{"Option", ModAlt},
		{"s", ModShift},
		{"cmd", ModMeta},
		{"hyper", ModNone},
	}
	for _, tt := range tests {
		if got := ModifierFromName(tt.name); got != tt.want {
			t.Errorf("ModifierFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestModifierSet(t *testing.T) {
	m := ModNone.With(ModCtrl).With(ModShift)
	if !m.HasCtrl() || !m.HasShift() || m.HasAlt() {
		t.Errorf("With() = %v", m)
	}
	if m = m.Without(ModShift); m != ModCtrl {
		t.Errorf("Without(Shift) = %v, want Ctrl", m)
	}
	if ModCtrl.Has(ModNone) {
		t.Error("Has(ModNone) = true")
	}
}
