package write

import (
	"bytes"
	"strings"
	"testing"
)

type fakeAdder struct {
	iter int
}

func (f *fakeAdder) AppendWriteData(v []*Value) []*Value {
	v = append(v, &Value{Heading: "Iter", Value: f.iter})
	v = append(v, &Value{Heading: "Resid", Value: 0.5})
	return v
}

func TestDisplayLogger(t *testing.T) {
	var buf bytes.Buffer
	adder := &fakeAdder{}

	d := NewDisplay()
	d.AddDataAdder(adder)
	if err := d.Init(&WriteSettings{TraceWriters: []Writer{{Writer: &buf, T: Logger}}}); err != nil {
		t.Fatalf("error initializing display: %v", err)
	}

	for i := 1; i <= 3; i++ {
		adder.iter = i
		if err := d.Iterate(); err != nil {
			t.Fatalf("error iterating display: %v", err)
		}
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("logged %d lines, expected header plus 3 rows", len(lines))
	}
	if lines[0] != "Iter,Resid" {
		t.Errorf("header %q, expected %q", lines[0], "Iter,Resid")
	}
	if !strings.HasPrefix(lines[2], "2,") {
		t.Errorf("row %q, expected it to start with iteration 2", lines[2])
	}
}

func TestDisplayDisplayer(t *testing.T) {
	var buf bytes.Buffer
	adder := &fakeAdder{iter: 1}

	d := NewDisplay()
	d.AddDataAdder(adder)
	if err := d.Init(&WriteSettings{TraceWriters: []Writer{{Writer: &buf, T: Displayer}}}); err != nil {
		t.Fatalf("error initializing display: %v", err)
	}
	if err := d.Iterate(); err != nil {
		t.Fatalf("error iterating display: %v", err)
	}

	// A fresh display prints headings and values on the first iteration
	out := buf.String()
	if !strings.Contains(out, "Iter") || !strings.Contains(out, "Resid") {
		t.Errorf("display output %q missing headings", out)
	}
}

func TestDisplayNoWriters(t *testing.T) {
	d := NewDisplay()
	d.AddDataAdder(&fakeAdder{})
	if err := d.Init(DefaultWriteSettings()); err != nil {
		t.Fatalf("error initializing display: %v", err)
	}
	if err := d.Iterate(); err != nil {
		t.Fatalf("error iterating display: %v", err)
	}
}
