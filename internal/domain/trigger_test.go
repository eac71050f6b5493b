package domain

import "testing"

func TestDefaultKeyBindings(t *testing.T) {
	b := DefaultKeyBindings()
	tests := []struct {
		code string
		want Mode
	}{
		{"KeyC", ModeBranch},
		{"KeyZ", ModeURL},
		{"KeyM", ModeMarkdown},
		{"KeyX", ModePlain},
	}
	for _, tt := range tests {
		got, ok := b.Lookup(tt.code)
		if !ok || got != tt.want {
			t.Errorf("Lookup(%q) = %q, %v; want %q, true", tt.code, got, ok, tt.want)
		}
	}
	if _, ok := b.Lookup("KeyV"); ok {
		t.Errorf("Lookup(KeyV) should not be bound")
	}
	if got := b.KeyForMode(ModeMarkdown); got != "KeyM" {
		t.Errorf("KeyForMode(markdown) = %q, want KeyM", got)
	}
}

func TestKeyCodeFromRune(t *testing.T) {
	tests := []struct {
		r    rune
		want string
	}{
		{'c', "KeyC"},
		{'Z', "KeyZ"},
		{'7', "Digit7"},
		{'!', ""},
		{'é', ""},
	}
	for _, tt := range tests {
		if got := KeyCodeFromRune(tt.r); got != tt.want {
			t.Errorf("KeyCodeFromRune(%q) = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestValidateKeyCode(t *testing.T) {
	valid := []string{"KeyA", "KeyZ", "Digit0", "Digit9"}
	for _, c := range valid {
		if err := ValidateKeyCode(c); err != nil {
			t.Errorf("ValidateKeyCode(%q) = %v, want nil", c, err)
		}
	}
	invalid := []string{"", "Keyc", "KeyAB", "Digit", "Enter", "c"}
	for _, c := range invalid {
		if err := ValidateKeyCode(c); err == nil {
			t.Errorf("ValidateKeyCode(%q) = nil, want error", c)
		}
	}
}

func TestDefaultMenuCommands(t *testing.T) {
	cmds := DefaultMenuCommands()
	if len(cmds) != 2 {
		t.Fatalf("len = %d, want 2", len(cmds))
	}
	if cmds[0].Label != MenuLabelMarkdown || cmds[0].Mode != ModeMarkdown {
		t.Errorf("cmds[0] = %+v", cmds[0])
	}
	if cmds[1].Label != MenuLabelSummary || cmds[1].Mode != ModePlain {
		t.Errorf("cmds[1] = %+v", cmds[1])
	}
}
