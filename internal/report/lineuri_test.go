package report

import "testing"

func TestParseLineURI(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ddi  string
		ext  string
		tag  string
	}{
		{"tel scheme", "tel:+15551234567", "15551234567", "", ""},
		{"plus with extension", "+15551234567;ext=204", "15551234567", "204", ""},
		{"plain digits", "15551234567", "15551234567", "", ""},
		{"tel scheme with extension", "tel:+15551234567;ext=42", "15551234567", "42", ""},
		{"trailing tag", "15551234567;site-A", "15551234567", "", "site-A"},
		{"no plus no scheme with ext", "200;ext=1", "200", "1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLineURI(tt.in)
			if got.DDI != tt.ddi {
				t.Errorf("DDI = %q, want %q", got.DDI, tt.ddi)
			}
			if got.Ext != tt.ext {
				t.Errorf("Ext = %q, want %q", got.Ext, tt.ext)
			}
			if got.Tag != tt.tag {
				t.Errorf("Tag = %q, want %q", got.Tag, tt.tag)
			}
			if got.Raw != tt.in {
				t.Errorf("Raw = %q, want %q", got.Raw, tt.in)
			}
		})
	}
}

func TestParseLineURI_NoMatch(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"not-a-number",
		"tel:",
		"tel:+",
		"+1555;ext=",
		"sip:user@example.com",
		"555 1234",
	}

	for _, in := range inputs {
		got := ParseLineURI(in)
		if got.DDI != "" || got.Ext != "" || got.Tag != "" {
			t.Errorf("ParseLineURI(%q) = %+v, want empty fields", in, got)
		}
		if got.Raw != in {
			t.Errorf("ParseLineURI(%q) lost raw input", in)
		}
	}
}

// Re-parsing an extracted DDI on its own yields the same DDI and no
// extension.
func TestParseLineURI_Idempotent(t *testing.T) {
	inputs := []string{
		"tel:+15551234567",
		"+15551234567;ext=204",
		"4915790000001",
		"200;ext=1",
	}

	for _, in := range inputs {
		first := ParseLineURI(in)
		if first.DDI == "" {
			continue
		}
		second := ParseLineURI(first.DDI)
		if second.DDI != first.DDI {
			t.Errorf("re-parse of %q DDI = %q, want %q", in, second.DDI, first.DDI)
		}
		if second.Ext != "" {
			t.Errorf("re-parse of %q Ext = %q, want empty", in, second.Ext)
		}
	}
}
