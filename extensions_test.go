package fastdl

import "testing"

func TestIsAsset(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"model.mdl", true},
		{"crate.vmt", true},
		{"crate.vtf", true},
		{"model.dx90.vtx", true},
		{"model.phy", true},
		{"model.vvd", true},
		{"radio/go.wav", true},
		{"music/theme.mp3", true},
		{"maps/de_dust2.bsp", true},

		{"model.MDL", false},
		{"model.Mdl", false},
		{"model.mdlx", false},
		{"model.mdl.txt", false},
		{"model.mdl.bz2", false},
		{"mdl", false},
		{"model.", false},
		{"readme.txt", false},
		{"dir.mdl/readme", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAsset(tt.name); got != tt.want {
				t.Errorf("IsAsset(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestArtifactName(t *testing.T) {
	tests := []struct {
		name string
		algo Algorithm
		want string
	}{
		{"maps/de_dust2.bsp", AlgorithmBzip2, "maps/de_dust2.bsp.bz2"},
		{"model.mdl", AlgorithmGzip, "model.mdl.gz"},
		{"model.mdl", AlgorithmZstd, "model.mdl.zst"},
		{"model.mdl", AlgorithmLZ4, "model.mdl.lz4"},
		{"model.mdl", AlgorithmBrotli, "model.mdl.br"},
		{"model.mdl", AlgorithmSnappy, "model.mdl.sz"},
	}

	for _, tt := range tests {
		if got := ArtifactName(tt.name, tt.algo); got != tt.want {
			t.Errorf("ArtifactName(%q, %s) = %q, want %q", tt.name, tt.algo, got, tt.want)
		}
	}
}

func TestGetExtensionUnknown(t *testing.T) {
	if ext := GetExtension(Algorithm("xz")); ext != "" {
		t.Errorf("Expected empty extension, got %q", ext)
	}
}
