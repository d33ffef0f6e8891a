package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateTemplateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "simple name", input: "en"},
		{name: "name with hyphen", input: "senior-engineer"},
		{name: "name with underscore", input: "my_cv"},
		{name: "name with numbers", input: "cv2025"},
		{name: "unicode", input: "currículum"},

		{name: "empty name", input: "", wantErr: ErrInvalidAssetName},
		{name: "forward slash", input: "cv/en", wantErr: ErrInvalidAssetName},
		{name: "backslash", input: "cv\\en", wantErr: ErrInvalidAssetName},
		{name: "parent directory traversal", input: "../secret", wantErr: ErrInvalidAssetName},
		{name: "windows parent traversal", input: "..\\secret", wantErr: ErrInvalidAssetName},
		{name: "absolute path", input: "/etc/passwd", wantErr: ErrInvalidAssetName},
		{name: "extension in name", input: "en.md", wantErr: ErrInvalidAssetName},
		{name: "hidden file", input: ".hidden", wantErr: ErrInvalidAssetName},
		{name: "two dots", input: "..", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateTemplateName(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateTemplateName(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTemplateName_QuotesName(t *testing.T) {
	t.Parallel()

	err := ValidateTemplateName("../evil")
	if err == nil || !strings.Contains(err.Error(), `"../evil"`) {
		t.Errorf("ValidateTemplateName() error = %v, want it to quote the name", err)
	}
}
