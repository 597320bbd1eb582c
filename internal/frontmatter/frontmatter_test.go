package frontmatter

import (
	"errors"
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantPresent bool
		wantFields  map[string]any
		wantBody    string
		wantErr     error
	}{
		{
			name:        "simple header",
			input:       "---\nname: my-skill\ndescription: Formats Go code\n---\n# Body\n",
			wantPresent: true,
			wantFields:  map[string]any{"name": "my-skill", "description": "Formats Go code"},
			wantBody:    "# Body\n",
		},
		{
			name:        "no frontmatter",
			input:       "# Just a document\n\nNo header here.",
			wantPresent: false,
			wantFields:  map[string]any{},
			wantBody:    "# Just a document\n\nNo header here.",
		},
		{
			name:    "unclosed header",
			input:   "---\nname: my-skill\n# never closed",
			wantErr: ErrMalformed,
		},
		{
			name:        "quotes stripped",
			input:       "---\nname: \"quoted\"\nhint: 'single'\n---\nbody",
			wantPresent: true,
			wantFields:  map[string]any{"name": "quoted", "hint": "single"},
			wantBody:    "body",
		},
		{
			name:        "boolean coercion",
			input:       "---\ndisable-model-invocation: true\nother: FALSE\n---\nbody",
			wantPresent: true,
			wantFields:  map[string]any{"disable-model-invocation": true, "other": false},
			wantBody:    "body",
		},
		{
			name:        "flow list value",
			input:       "---\nallowed-tools: [Read, Write]\n---\nbody",
			wantPresent: true,
			wantFields:  map[string]any{"allowed-tools": []string{"Read", "Write"}},
			wantBody:    "body",
		},
		{
			name:        "comment and colonless lines ignored",
			input:       "---\n# a comment\nname: x\njust some text\n---\nbody",
			wantPresent: true,
			wantFields:  map[string]any{"name": "x"},
			wantBody:    "body",
		},
		{
			name:        "empty header block",
			input:       "---\n---\nbody",
			wantPresent: true,
			wantFields:  map[string]any{},
			wantBody:    "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, err := Extract(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Extract() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Extract() unexpected error: %v", err)
			}
			if fm.Present != tt.wantPresent {
				t.Errorf("Present = %v, want %v", fm.Present, tt.wantPresent)
			}
			if !reflect.DeepEqual(fm.Fields, tt.wantFields) {
				t.Errorf("Fields = %#v, want %#v", fm.Fields, tt.wantFields)
			}
			if fm.Body != tt.wantBody {
				t.Errorf("Body = %q, want %q", fm.Body, tt.wantBody)
			}
		})
	}
}

func TestFieldLine(t *testing.T) {
	content := "---\nname: x\ndescription: y\n---\nname: not-this-one\n"

	if got := FieldLine(content, "description"); got != 3 {
		t.Errorf("FieldLine(description) = %d, want 3", got)
	}
	if got := FieldLine(content, "missing"); got != 0 {
		t.Errorf("FieldLine(missing) = %d, want 0", got)
	}
	// Lookups never escape the header block.
	if got := FieldLine(content, "name"); got != 2 {
		t.Errorf("FieldLine(name) = %d, want 2", got)
	}
}

func TestListOrCSV(t *testing.T) {
	fm := &FrontMatter{Fields: map[string]any{
		"csv":  "Read, Write , Bash",
		"list": []string{"Glob", "Grep"},
		"bad":  true,
	}}

	got, ok := fm.ListOrCSV("csv")
	if !ok || !reflect.DeepEqual(got, []string{"Read", "Write", "Bash"}) {
		t.Errorf("ListOrCSV(csv) = %v, %v", got, ok)
	}
	got, ok = fm.ListOrCSV("list")
	if !ok || !reflect.DeepEqual(got, []string{"Glob", "Grep"}) {
		t.Errorf("ListOrCSV(list) = %v, %v", got, ok)
	}
	if _, ok = fm.ListOrCSV("bad"); ok {
		t.Error("ListOrCSV(bad) should report a shape mismatch")
	}
	if got, ok = fm.ListOrCSV("absent"); got != nil || !ok {
		t.Errorf("ListOrCSV(absent) = %v, %v; want nil, true", got, ok)
	}
}
