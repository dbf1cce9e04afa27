package span

import "testing"

var (
	sinkSpan Span
	sinkBool bool
	sinkU64  uint64
)

func BenchmarkSpanSlicing(b *testing.B) {
	s := FromString("Hello, Azure! Hello, Azure! Hello, Azure!")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkSpan = s.Sub(7, 12).Take(3).Drop(1)
	}
}

func BenchmarkSpanEqualIgnoringCase(b *testing.B) {
	x := FromString("Content-Type")
	y := FromString("content-type")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkBool = x.EqualIgnoringCase(y)
	}
}

func BenchmarkSpanOverlaps(b *testing.B) {
	buf := make([]byte, 64)
	s := FromBytes(buf)
	x, y := s.Sub(0, 40), s.Sub(20, 64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkBool = x.Overlaps(y)
	}
}

func BenchmarkSpanToUint64(b *testing.B) {
	s := FromString("18446744073709551615")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkU64, _ = s.ToUint64()
	}
}
