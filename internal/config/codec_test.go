package config

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"

	"github.com/skyhaven/launcher/internal/packages"
	"github.com/skyhaven/launcher/internal/settings"
)

func sampleSnapshot(t *testing.T) *Snapshot {
	t.Helper()

	root := filepath.Join("home", "player", "SkyhavenLauncher")
	snap, err := NewBuilder().
		InstallDir(filepath.Join(root, "Skyhaven")).
		DataDir(filepath.Join(root, "SkyhavenData")).
		MaxHeap(settings.HeapGb2).
		InitialHeap(settings.HeapGb1).
		JavaParams("-XX:MaxGCPauseMillis=50").
		LogLevel(settings.LevelDebug).
		Package(packages.Ref{ID: "skyhaven-stable", Version: "5.2.0"}).
		Locale(language.German).
		LauncherDir(root).
		CheckUpdatesOnLaunch(true).
		CacheGamePackages(false).
		CloseAfterGameStarts(false).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return snap
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	codec := NewCodec()
	orig := sampleSnapshot(t)

	data, err := codec.Encode(orig)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	decoded, err := codec.Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if *decoded != *orig {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *decoded, *orig)
	}
}

func TestEncodeDefaultRoundTrip(t *testing.T) {
	codec := NewCodec()
	orig := defaultSnapshot(filepath.Join("opt", "launcher"))

	data, err := codec.Encode(orig)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	decoded, err := codec.Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if *decoded != *orig {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *decoded, *orig)
	}
}

func TestEncodeIsPrettyPrinted(t *testing.T) {
	codec := NewCodec()

	data, err := codec.Encode(sampleSnapshot(t))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if !bytes.Contains(data, []byte("\"game\": {")) {
		t.Errorf("output is not indented:\n%s", data)
	}
	if bytes.Count(data, []byte("\n")) < 5 {
		t.Errorf("output should span multiple lines:\n%s", data)
	}
}

func TestEncodeDoesNotEscapeHTML(t *testing.T) {
	codec := NewCodec()

	snap, err := NewBuilder().
		From(sampleSnapshot(t)).
		JavaParams("-Dtags=<perf>&<gc>").
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	data, err := codec.Encode(snap)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if bytes.Contains(data, []byte(`\u003c`)) || bytes.Contains(data, []byte(`\u0026`)) {
		t.Errorf("output escapes HTML characters:\n%s", data)
	}
	if !bytes.Contains(data, []byte("-Dtags=<perf>&<gc>")) {
		t.Errorf("output should keep the params literal:\n%s", data)
	}
}

func TestDecodeEmptyDocument(t *testing.T) {
	codec := NewCodec()

	for _, data := range [][]byte{nil, []byte(""), []byte("   \n\t")} {
		_, err := codec.Decode(data)
		var malformed *MalformedDocumentError
		if !errors.As(err, &malformed) {
			t.Errorf("Decode(%q) error = %v, want MalformedDocumentError", data, err)
		}
	}
}

func TestDecodeInvalidSyntax(t *testing.T) {
	codec := NewCodec()

	_, err := codec.Decode([]byte(`{"game": {`))
	var malformed *MalformedDocumentError
	if !errors.As(err, &malformed) {
		t.Fatalf("Decode() error = %v, want MalformedDocumentError", err)
	}
}

func TestDecodeMalformedPath(t *testing.T) {
	codec := NewCodec()

	// Valid JSON, but the install dir is not a usable path.
	doc := []byte(`{
  "game": {
    "installDir": "",
    "dataDir": "data",
    "maxMemory": "GB_1_5",
    "initMemory": "GB_1",
    "javaParams": "",
    "logLevel": "DEFAULT"
  },
  "locale": "en",
  "launcherDir": "launcher",
  "checkUpdatesOnLaunch": false,
  "cacheGamePackages": true,
  "closeAfterGameStarts": true
}`)

	_, err := codec.Decode(doc)
	var malformed *MalformedPathError
	if !errors.As(err, &malformed) {
		t.Fatalf("Decode() error = %v, want MalformedPathError", err)
	}
	if malformed.Field != "game.installDir" {
		t.Errorf("MalformedPathError.Field = %q, want %q", malformed.Field, "game.installDir")
	}
}

func TestDecodeMalformedPackageRef(t *testing.T) {
	codec := NewCodec()

	doc := []byte(`{
  "game": {
    "installDir": "game",
    "dataDir": "data",
    "maxMemory": "GB_1_5",
    "initMemory": "GB_1",
    "javaParams": "",
    "logLevel": "DEFAULT",
    "package": {"id": "skyhaven-stable"}
  },
  "locale": "en",
  "launcherDir": "launcher",
  "checkUpdatesOnLaunch": false,
  "cacheGamePackages": true,
  "closeAfterGameStarts": true
}`)

	_, err := codec.Decode(doc)
	var malformed *MalformedPackageRefError
	if !errors.As(err, &malformed) {
		t.Fatalf("Decode() error = %v, want MalformedPackageRefError", err)
	}
	if len(malformed.Missing) != 1 || malformed.Missing[0] != "version" {
		t.Errorf("MalformedPackageRefError.Missing = %v, want [version]", malformed.Missing)
	}
}

func TestDecodeUnknownEnumValue(t *testing.T) {
	codec := NewCodec()

	doc := []byte(`{
  "game": {
    "installDir": "game",
    "dataDir": "data",
    "maxMemory": "GB_99",
    "initMemory": "GB_1",
    "javaParams": "",
    "logLevel": "DEFAULT"
  },
  "locale": "en",
  "launcherDir": "launcher",
  "checkUpdatesOnLaunch": false,
  "cacheGamePackages": true,
  "closeAfterGameStarts": true
}`)

	_, err := codec.Decode(doc)
	var malformed *MalformedDocumentError
	if !errors.As(err, &malformed) {
		t.Fatalf("Decode() error = %v, want MalformedDocumentError", err)
	}
}

func TestDecodeWithoutPackage(t *testing.T) {
	codec := NewCodec()

	// No build selected yet is a legal state, not a malformed ref.
	snap, err := NewBuilder().
		From(sampleSnapshot(t)).
		Package(packages.Ref{}).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	data, err := codec.Encode(snap)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if bytes.Contains(data, []byte(`"package"`)) {
		t.Errorf("zero package ref should be omitted:\n%s", data)
	}

	decoded, err := codec.Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !decoded.Game.Package.Zero() {
		t.Errorf("decoded package = %v, want zero ref", decoded.Game.Package)
	}
}
