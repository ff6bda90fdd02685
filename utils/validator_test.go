package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("jane@uni.edu"))
	assert.True(t, ValidateEmail("jane.doe+ref@dept.uni.edu"))
	assert.False(t, ValidateEmail("jane"))
	assert.False(t, ValidateEmail("jane@uni"))
	assert.False(t, ValidateEmail(""))
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "Jane Doe", SanitizeInput("  Jane Doe  "))
	assert.Equal(t, "abc", SanitizeInput("a\x00bc"))
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"resume.pdf":             "resume.pdf",
		"../../etc/passwd":       "passwd",
		"..\\..\\evil.pdf":       "evil.pdf",
		"my resume (v2).pdf":     "my_resume__v2_.pdf",
		"...":                    "",
		"\x00":                   "",
		"CV_Jane-Doe.final.docx": "CV_Jane-Doe.final.docx",
	}

	for input, want := range cases {
		assert.Equal(t, want, SanitizeFilename(input), "input %q", input)
	}
}
