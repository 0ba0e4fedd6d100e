package pages

import "testing"

func TestReplaceExtension(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		ext  string
		want string
	}{
		{name: "page", ext: ".html", want: "page.html"},
		{name: "page.ts", ext: ".html", want: "page.html"},
		{name: "a.b.c", ext: ".x", want: "a.b.x"},
		{name: "home", ext: ".ts", want: "home.ts"},
		{name: "v1.2", ext: ".ts", want: "v1.ts"},
		{name: "trailing.", ext: ".html", want: "trailing..html"},
		{name: ".hidden", ext: ".html", want: ".html"},
		{name: "", ext: ".ts", want: ".ts"},
	}

	for _, tc := range testCases {
		t.Run(tc.name+tc.ext, func(t *testing.T) {
			t.Parallel()
			if got := ReplaceExtension(tc.name, tc.ext); got != tc.want {
				t.Errorf("ReplaceExtension(%q, %q) = %q, want %q", tc.name, tc.ext, got, tc.want)
			}
		})
	}
}
