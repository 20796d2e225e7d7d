package io

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/mvoggen/grove/pkg/forest"
)

func TestRoundTrip(t *testing.T) {
	items := forest.Parse("a, b(c, d(e)), empty(), f")

	var buf bytes.Buffer
	if err := WriteJSON(items, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if !reflect.DeepEqual(got, items) {
		t.Errorf("round trip =\n%v\nwant\n%v", forest.Sprint(got), forest.Sprint(items))
	}
}

func TestWriteJSONLeafNodeDistinction(t *testing.T) {
	items := []*forest.Item{forest.Leaf("a"), forest.Node("b")}

	var buf bytes.Buffer
	if err := WriteJSON(items, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	out := buf.String()
	if strings.Count(out, `"children"`) != 1 {
		t.Errorf("expected exactly one children key, got:\n%s", out)
	}
	if !strings.Contains(out, `"children": []`) {
		t.Errorf("empty node must keep an empty children array, got:\n%s", out)
	}
}

func TestReadJSONInvalid(t *testing.T) {
	if _, err := ReadJSON(strings.NewReader("{not json")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestExportImportFile(t *testing.T) {
	items := forest.Parse("x(y(z)), w")
	path := filepath.Join(t.TempDir(), "forest.json")

	if err := ExportJSON(items, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if !reflect.DeepEqual(got, items) {
		t.Errorf("file round trip =\n%v\nwant\n%v", forest.Sprint(got), forest.Sprint(items))
	}
}

func TestImportJSONMissingFile(t *testing.T) {
	if _, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
