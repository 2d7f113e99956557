package vbsp

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/samuelyuan/vbsp/bsp"
	"github.com/samuelyuan/vbsp/trace"
)

// writeMinimalMap writes a header-only BSP file (no lumps populated) so
// LoadMap has something loadable without duplicating bsp's own fixture
// builder.
func writeMinimalMap(t *testing.T, dir, name string, ident [4]byte, version int32) {
	t.Helper()

	var hdr bytes.Buffer
	binary.Write(&hdr, binary.LittleEndian, ident)
	binary.Write(&hdr, binary.LittleEndian, version)
	for i := 0; i < bsp.NumLumps; i++ {
		binary.Write(&hdr, binary.LittleEndian, bsp.LumpEntry{})
	}
	binary.Write(&hdr, binary.LittleEndian, int32(0))

	path := filepath.Join(dir, name+".bsp")
	if err := os.WriteFile(path, hdr.Bytes(), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
}

func TestLoadMapThenTraceOpenSky(t *testing.T) {
	dir := t.TempDir()
	writeMinimalMap(t, dir, "empty", [4]byte{'V', 'B', 'S', 'P'}, bsp.MinVersion)

	var f Facade
	if !f.LoadMap(dir, "empty") {
		t.Fatalf("LoadMap failed: %v", f.LastError())
	}

	var tr trace.Trace
	f.TraceRay(trace.Vec3{0, 0, 0}, trace.Vec3{100, 0, 0}, 0, &tr)
	if tr.Fraction != 1 {
		t.Fatalf("Fraction = %v, want 1 for an empty map", tr.Fraction)
	}
	if !f.IsVisible(trace.Vec3{0, 0, 0}, trace.Vec3{100, 0, 0}) {
		t.Fatal("IsVisible should match TraceRay's fraction == 1")
	}
}

func TestLoadMapRejectsBadIdentAndKeepsPriorMap(t *testing.T) {
	dir := t.TempDir()
	writeMinimalMap(t, dir, "good", [4]byte{'V', 'B', 'S', 'P'}, bsp.MinVersion)
	writeMinimalMap(t, dir, "bad", [4]byte{'X', 'B', 'S', 'P'}, bsp.MinVersion)

	var f Facade
	if !f.LoadMap(dir, "good") {
		t.Fatalf("LoadMap(good) failed: %v", f.LastError())
	}

	if f.LoadMap(dir, "bad") {
		t.Fatal("LoadMap(bad) should have failed")
	}
	if f.LastError() == nil {
		t.Fatal("expected LastError to be populated after a failed LoadMap")
	}

	// The previously loaded map must still answer queries (scenario S6).
	if !f.IsVisible(trace.Vec3{0, 0, 0}, trace.Vec3{1, 0, 0}) {
		t.Fatal("prior map should remain active after a failed LoadMap")
	}
}

func TestUnloadedFacadeIsVisible(t *testing.T) {
	var f Facade
	if !f.IsVisible(trace.Vec3{0, 0, 0}, trace.Vec3{1, 0, 0}) {
		t.Fatal("an unloaded facade should report segments as visible")
	}
}
