package domain

import (
	"path/filepath"
	"strings"
)

// Asset keys used to look up animations and audio through the resource provider.
// They match the directory names of the resource tree.
const (
	AssetIdle        = "Idle"
	AssetClick       = "Click"
	AssetMove        = "Move"
	AssetDoubleClick = "DoubleClick"
)

// AssetKind tells which sink can present an asset.
type AssetKind int

const (
	KindAnimation AssetKind = iota
	KindAudio
)

func (k AssetKind) String() string {
	if k == KindAudio {
		return "audio"
	}
	return "animation"
}

var assetKinds = map[string]AssetKind{
	".gif": KindAnimation,
	".png": KindAnimation,
	".wav": KindAudio,
}

// KindOf classifies asset by its file extension, case-insensitively.
// Unknown extensions report false.
func KindOf(asset string) (AssetKind, bool) {
	kind, ok := assetKinds[strings.ToLower(filepath.Ext(asset))]
	return kind, ok
}

// Info label keys bound through the UI binding table.
const (
	LabelCPU     = "cpu_label"
	LabelMemory  = "memory_label"
	LabelNetwork = "network_label"
)
