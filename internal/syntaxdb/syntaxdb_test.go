package syntaxdb

import "testing"

func cLang() *Lang {
	for _, l := range Registry {
		if l.Name == "c" {
			return l
		}
	}
	return nil
}

func TestSelectByExtension(t *testing.T) {
	lang := Select("main.c")
	if lang == nil || lang.Name != "c" {
		t.Fatalf("Select(main.c) = %v, want c", lang)
	}
}

func TestSelectNoMatch(t *testing.T) {
	if lang := Select("README.md"); lang != nil {
		t.Errorf("Select(README.md) = %v, want nil", lang)
	}
}

func TestHighlightKeyword(t *testing.T) {
	hl, _ := HighlightRow([]byte("if (x)"), cLang(), false)
	for i := 0; i < 2; i++ {
		if hl[i] != Keyword1 {
			t.Errorf("hl[%d] = %d, want Keyword1", i, hl[i])
		}
	}
	if hl[2] != Normal {
		t.Errorf("hl[2] (space) = %d, want Normal", hl[2])
	}
}

func TestHighlightTypeKeywordIsKeyword2(t *testing.T) {
	hl, _ := HighlightRow([]byte("int x;"), cLang(), false)
	for i := 0; i < 3; i++ {
		if hl[i] != Keyword2 {
			t.Errorf("hl[%d] = %d, want Keyword2", i, hl[i])
		}
	}
}

func TestHighlightString(t *testing.T) {
	hl, _ := HighlightRow([]byte(`"hi"`), cLang(), false)
	for i, h := range hl {
		if h != String {
			t.Errorf("hl[%d] = %d, want String", i, h)
		}
	}
}

func TestHighlightNumberAndHexContinuation(t *testing.T) {
	hl, _ := HighlightRow([]byte("0xFF"), cLang(), false)
	for i, h := range hl {
		if h != Number {
			t.Errorf("hl[%d] (%q) = %d, want Number", i, hl[i], h)
		}
	}
}

func TestHighlightSingleLineComment(t *testing.T) {
	hl, _ := HighlightRow([]byte("x // c"), cLang(), false)
	for i := 2; i < len(hl); i++ {
		if hl[i] != SLComment {
			t.Errorf("hl[%d] = %d, want SLComment", i, hl[i])
		}
	}
}

func TestMultiLineCommentPropagation(t *testing.T) {
	row1, open1 := HighlightRow([]byte("/* start"), cLang(), false)
	if !open1 {
		t.Fatal("row1 should leave the comment open")
	}
	for _, h := range row1 {
		if h != MLComment {
			t.Errorf("row1 byte classified %d, want MLComment", h)
		}
	}

	row2, open2 := HighlightRow([]byte("still in comment"), cLang(), open1)
	if !open2 {
		t.Fatal("row2 should still be open")
	}
	for _, h := range row2 {
		if h != MLComment {
			t.Errorf("row2 byte classified %d, want MLComment", h)
		}
	}

	row3, open3 := HighlightRow([]byte("end */ int x;"), cLang(), open2)
	if open3 {
		t.Fatal("row3 should close the comment")
	}
	if row3[0] != MLComment {
		t.Errorf("row3[0] = %d, want MLComment", row3[0])
	}
	// "int" after the closing */ should be classified again as a keyword.
	foundKeyword := false
	for _, h := range row3 {
		if h == Keyword2 {
			foundKeyword = true
		}
	}
	if !foundKeyword {
		t.Error("row3 should contain a Keyword2 classification for 'int' after the comment closes")
	}
}

func TestNilLangProducesBlankHighlight(t *testing.T) {
	hl, open := HighlightRow([]byte("whatever"), nil, false)
	if open {
		t.Error("nil lang should never report an open comment")
	}
	for _, h := range hl {
		if h != Normal {
			t.Errorf("nil lang classified %d, want Normal", h)
		}
	}
}
