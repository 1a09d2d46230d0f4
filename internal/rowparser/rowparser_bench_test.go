package rowparser

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func benchmarkData() []byte {
	return []byte(strings.Repeat(
		"alpha,beta,gamma,delta,epsilon\n"+
			"1001,\"first, second\",plain,\"with \"\"quotes\"\"\",tail\n"+
			"2002,\"multi\nline value\",short,,\n", 20))
}

func BenchmarkNext(b *testing.B) {
	data := benchmarkData()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	for i := 0; i < b.N; i++ {
		p := New(bytes.NewReader(data), ',')
		for {
			if _, err := p.Next(); err != nil {
				if err == io.EOF {
					break
				}
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkNext_PlainFields(b *testing.B) {
	data := []byte(strings.Repeat("aaaa,bbbb,cccc,dddd,eeee,ffff\n", 50))
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	for i := 0; i < b.N; i++ {
		p := New(bytes.NewReader(data), ',')
		for {
			if _, err := p.Next(); err != nil {
				if err == io.EOF {
					break
				}
				b.Fatal(err)
			}
		}
	}
}
