package services

import "testing"

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			"bare array",
			`[{"name":"Pasta"}]`,
			`[{"name":"Pasta"}]`,
		},
		{
			"fenced json",
			"```json\n[{\"name\":\"Pasta\"}]\n```",
			`[{"name":"Pasta"}]`,
		},
		{
			"plain fence",
			"```\n{\"a\":1}\n```",
			`{"a":1}`,
		},
		{
			"leading prose",
			`Here are your recipes: [{"name":"Pasta"}] enjoy`,
			`[{"name":"Pasta"}]`,
		},
		{
			"no json at all",
			"sorry, I cannot help",
			"sorry, I cannot help",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractJSON(tc.in); got != tc.want {
				t.Errorf("ExtractJSON(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
