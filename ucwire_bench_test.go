package ucwire

import (
	"testing"

	"gopkg.in/yaml.v3"
)

type benchState struct {
	Flag    bool
	Count   uint16
	Mod     int8
	Temp    float32
	Axes    [4]int16
	Battery uint8
}

var benchValue = benchState{
	Flag: true, Count: 300, Mod: -7, Temp: 21.5,
	Axes: [4]int16{100, -250, 300, 0}, Battery: 95,
}

func BenchmarkEncode(b *testing.B) {
	c := Default()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = c.Encode(benchValue)
	}
}

func BenchmarkDecode(b *testing.B) {
	c := Default()
	payload, _ := c.Encode(benchValue)
	out := &benchState{}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = c.Decode(payload, out)
	}
}

func BenchmarkSerialize(b *testing.B) {
	c := Default()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = c.Serialize(benchValue)
	}
}

func BenchmarkDeserialize(b *testing.B) {
	c := Default()
	pkt, _ := c.Serialize(benchValue)
	out := &benchState{}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = c.Deserialize(pkt, out)
	}
}

func BenchmarkChecksum(b *testing.B) {
	buf := make([]byte, MaxPayload+Overhead)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Checksum(buf)
	}
}

func BenchmarkScanner(b *testing.B) {
	c := Default()
	pkt, _ := c.Serialize(benchValue)
	s := NewScanner(c)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Push(pkt)
		_, _ = s.Next()
	}
}

// baseline: same value through a text marshaller
func BenchmarkYaml(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = yaml.Marshal(benchValue)
	}
}
