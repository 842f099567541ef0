package errors

import "testing"

func TestValidateDimension(t *testing.T) {
	tests := []struct {
		name    string
		dim     int
		min     int
		wantErr bool
	}{
		{"at minimum", 3, 3, false},
		{"above minimum", 7, 3, false},
		{"below minimum", 2, 3, true},
		{"zero", 0, 1, true},
		{"negative", -1, 1, true},
		{"too large", MaxDimension + 1, 1, true},
		{"at cap", MaxDimension, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimension(tt.dim, tt.min)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimension(%d, %d) error = %v, wantErr %v", tt.dim, tt.min, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidDimension) {
				t.Errorf("error code = %q, want INVALID_DIMENSION", GetCode(err))
			}
		})
	}
}

func TestValidatePlaneName(t *testing.T) {
	valid := []string{"XY", "XZ", "YZ", "XW", "ZW", "VU", "XA6", "A6A7", "A10A11"}
	for _, name := range valid {
		if err := ValidatePlaneName(name); err != nil {
			t.Errorf("ValidatePlaneName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", "X", "xy", "XYZ", "X Y", "A", "AX6", "X-", "6A"}
	for _, name := range invalid {
		if err := ValidatePlaneName(name); err == nil {
			t.Errorf("ValidatePlaneName(%q) = nil, want error", name)
		}
	}
}

func TestValidateScale(t *testing.T) {
	if err := ValidateScale(1.5); err != nil {
		t.Errorf("ValidateScale(1.5) = %v", err)
	}
	if err := ValidateScale(0); err == nil {
		t.Error("ValidateScale(0) should fail")
	}
	if err := ValidateScale(-2); err == nil {
		t.Error("ValidateScale(-2) should fail")
	}
}

func TestValidateResolution(t *testing.T) {
	if err := ValidateResolution(16); err != nil {
		t.Errorf("ValidateResolution(16) = %v", err)
	}
	if err := ValidateResolution(2); err == nil {
		t.Error("ValidateResolution(2) should fail")
	}
	if err := ValidateResolution(1000); err == nil {
		t.Error("ValidateResolution(1000) should fail")
	}
}

func TestValidateSceneName(t *testing.T) {
	if err := ValidateSceneName("demo.toml"); err != nil {
		t.Errorf("ValidateSceneName(demo.toml) = %v", err)
	}
	for _, name := range []string{"", "a/b.toml", `a\b.toml`, ".hidden"} {
		if err := ValidateSceneName(name); err == nil {
			t.Errorf("ValidateSceneName(%q) = nil, want error", name)
		}
	}
}
