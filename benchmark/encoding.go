package benchmark

import (
	"math/rand"
	"testing"

	mmgeohash "github.com/mmcloughlin/geohash"
	"github.com/muyo/geohash"
)

const (
	lat       = 57.64911
	lon       = 10.40744
	hash      = "u4pruydqqvj8"
	precision = 12
)

func benchmarkEncoding(b *testing.B) {
	println("\n-- Encoding ----------------------------------------------------------------------------------\n")
	b.Run("enc", benchmarkEncode)
	println("\n-- Decoding ----------------------------------------------------------------------------------\n")
	b.Run("dec", benchmarkDecode)
}

func benchmarkEncode(b *testing.B) {
	b.Run("geohash", benchmarkEncodeGeohash)
	b.Run("mmcloughlin", benchmarkEncodeMmcloughlin)
}

func benchmarkDecode(b *testing.B) {
	b.Run("geohash", benchmarkDecodeGeohash)
	b.Run("geohash-exact", benchmarkDecodeExactGeohash)
	b.Run("mmcloughlin", benchmarkDecodeMmcloughlin)
}

func benchmarkEncodeGeohash(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = geohash.EncodeWithPrecision(lat, lon, precision)
		}
	})
}

func benchmarkEncodeMmcloughlin(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = mmgeohash.EncodeWithPrecision(lat, lon, precision)
		}
	})
}

func benchmarkDecodeGeohash(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _, _ = geohash.Decode(hash)
		}
	})
}

func benchmarkDecodeExactGeohash(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _, _, _, _ = geohash.DecodeExact(hash)
		}
	})
}

func benchmarkDecodeMmcloughlin(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = mmgeohash.BoundingBox(hash)
		}
	})
}

func benchmarkBatch(b *testing.B) {
	for _, n := range []struct {
		name string
		size int
	}{
		{"1k", 1 << 10},
		{"64k", 1 << 16},
		{"1m", 1 << 20},
	} {
		b.Run(n.name, func(b *testing.B) {
			lats, lons := coords(n.size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := geohash.EncodeBatch(lats, lons, precision); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func coords(n int) (lats, lons []float64) {
	rng := rand.New(rand.NewSource(1))
	lats, lons = make([]float64, n), make([]float64, n)
	for i := range lats {
		lats[i] = rng.Float64()*180 - 90
		lons[i] = rng.Float64()*360 - 180
	}

	return
}
