package service

import (
	"strings"
	"testing"
)

func TestTruncateExcerpt(t *testing.T) {
	// 不超过 50 个字符原样返回
	short := "hello world"
	if got := truncateExcerpt(short); got != short {
		t.Fatalf("expected %q, got %q", short, got)
	}

	// 刚好 50 个字符不截断
	exact := strings.Repeat("a", 50)
	if got := truncateExcerpt(exact); got != exact {
		t.Fatalf("expected no truncation at exactly 50 chars, got %q", got)
	}

	// 超过 50 截断并补省略号
	long := strings.Repeat("a", 120)
	got := truncateExcerpt(long)
	if got != strings.Repeat("a", 50)+"..." {
		t.Fatalf("unexpected excerpt: %q", got)
	}
}

// 多字节内容按字符截，不能把一个字截成半个
func TestTruncateExcerpt_Multibyte(t *testing.T) {
	long := strings.Repeat("赞", 60)
	got := truncateExcerpt(long)
	if got != strings.Repeat("赞", 50)+"..." {
		t.Fatalf("unexpected excerpt: %q", got)
	}
}

func TestDedupIDs(t *testing.T) {
	ids := []int64{3, 1, 3, 2, 1, 3}
	got := dedupIDs(ids)

	want := []int64{3, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestDedupIDs_Empty(t *testing.T) {
	if got := dedupIDs(nil); len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}
