package gain

import (
	"math"
	"testing"
)

func TestDbConversion(t *testing.T) {
	tests := []struct {
		name    string
		linear  float64
		db      float64
		epsilon float64
	}{
		{"Unity gain", 1.0, 0.0, 0.001},
		{"Half amplitude", 0.5, -6.02, 0.01},
		{"Double amplitude", 2.0, 6.02, 0.01},
		{"Quarter amplitude", 0.25, -12.04, 0.01},
		{"Zero amplitude", 0.0, MinDB, 0.001},
		{"Negative amplitude", -1.0, MinDB, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotDb := LinearToDb(tt.linear)
			if math.Abs(gotDb-tt.db) > tt.epsilon {
				t.Errorf("LinearToDb(%f) = %f, want %f", tt.linear, gotDb, tt.db)
			}

			// Skip the floor cases, they do not round trip
			if tt.db != MinDB {
				gotLinear := DbToLinear(tt.db)
				if math.Abs(gotLinear-math.Abs(tt.linear)) > tt.epsilon {
					t.Errorf("DbToLinear(%f) = %f, want %f", tt.db, gotLinear, math.Abs(tt.linear))
				}
			}
		})
	}
}

func TestKnownScalars(t *testing.T) {
	tests := []struct {
		db   float32
		want float64
	}{
		{20, 10.0},
		{-20, 0.1},
		{-60, 0.001},
		{6, 1.9952623149688795},
	}

	for _, tt := range tests {
		got := float64(DbToLinear32(tt.db))
		want := math.Pow(10, float64(tt.db)/20)
		if math.Abs(got-want) > 1e-6*want {
			t.Errorf("DbToLinear32(%v) = %v, want %v", tt.db, got, want)
		}
		if math.Abs(got-tt.want) > 1e-6*tt.want {
			t.Errorf("DbToLinear32(%v) = %v, want ~%v", tt.db, got, tt.want)
		}
	}
}

func TestUnityIsExact(t *testing.T) {
	if DbToLinear(0) != 1 {
		t.Errorf("DbToLinear(0) = %v, want exactly 1", DbToLinear(0))
	}
	if DbToLinear32(0) != 1 {
		t.Errorf("DbToLinear32(0) = %v, want exactly 1", DbToLinear32(0))
	}
}

func TestVeryNegativeStaysFinite(t *testing.T) {
	inputs := []float32{-100, -200, -500, -1e6, float32(math.Inf(-1))}

	for _, db := range inputs {
		g := DbToLinear32(db)
		if !(g > 0) || math.IsInf(float64(g), 0) {
			t.Errorf("DbToLinear32(%v) = %v, want finite positive", db, g)
		}
		// Must stay a normal float32, not a denormal
		if g < math.SmallestNonzeroFloat32*(1<<23) {
			t.Errorf("DbToLinear32(%v) = %v is denormal", db, g)
		}
	}

	if g := DbToLinear(math.NaN()); !(g > 0) {
		t.Errorf("DbToLinear(NaN) = %v, want floor value", g)
	}
}

func TestApplyGain(t *testing.T) {
	sample := float32(0.5)
	gain := float32(2.0)
	expected := float32(1.0)

	result := Apply(sample, gain)
	if result != expected {
		t.Errorf("Apply(%f, %f) = %f, want %f", sample, gain, result, expected)
	}
}

func TestApplyBuffer(t *testing.T) {
	buffer := []float32{1.0, 0.5, -0.5, -1.0}
	gain := float32(0.5)
	expected := []float32{0.5, 0.25, -0.25, -0.5}

	ApplyBuffer(buffer, gain)

	for i, v := range buffer {
		if v != expected[i] {
			t.Errorf("ApplyBuffer: buffer[%d] = %f, want %f", i, v, expected[i])
		}
	}
}

func TestApplyDbBuffer(t *testing.T) {
	buffer := []float32{0.1, -0.2}
	ApplyDbBuffer(buffer, -20)

	if math.Abs(float64(buffer[0])-0.01) > 1e-7 || math.Abs(float64(buffer[1])+0.02) > 1e-7 {
		t.Errorf("ApplyDbBuffer(-20) = %v, want [0.01 -0.02]", buffer)
	}
}

func BenchmarkDbToLinear32(b *testing.B) {
	db := float32(-6.0)
	for i := 0; i < b.N; i++ {
		_ = DbToLinear32(db)
	}
}

func BenchmarkApplyBuffer(b *testing.B) {
	buf := make([]float32, 512)
	for i := 0; i < b.N; i++ {
		ApplyBuffer(buf, 0.5)
	}
}
