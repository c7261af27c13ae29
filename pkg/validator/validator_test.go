package validator

import "testing"

func TestValidateZipCode(t *testing.T) {
	valid := []string{"90210", "30301-1234"}
	for _, zip := range valid {
		if !ValidateZipCode(zip) {
			t.Errorf("%q rejected", zip)
		}
	}

	invalid := []string{"9021", "902101", "abcde", "90210-", "90210-12"}
	for _, zip := range invalid {
		if ValidateZipCode(zip) {
			t.Errorf("%q accepted", zip)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"4045550123", "(404) 555-0123", "1-404-555-0123"}
	for _, phone := range valid {
		if !ValidatePhone(phone) {
			t.Errorf("%q rejected", phone)
		}
	}

	invalid := []string{"123", "24045550123"}
	for _, phone := range invalid {
		if ValidatePhone(phone) {
			t.Errorf("%q accepted", phone)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	if !ValidateEmail("jamie@example.com") {
		t.Errorf("valid email rejected")
	}
	if ValidateEmail("not-an-email") {
		t.Errorf("invalid email accepted")
	}
}

func TestSanitizeHTML(t *testing.T) {
	Init()

	got := SanitizeHTML(`<p>ok</p><script>alert(1)</script>`)
	if got != "<p>ok</p>" {
		t.Errorf("SanitizeHTML = %q", got)
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString(`<b>Jamie</b>`); got != "Jamie" {
		t.Errorf("SanitizeString = %q", got)
	}
}
