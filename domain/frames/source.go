// Package frames provides ordered access to a recorded RGB-D sequence on
// disk: numbered JPEG frames with optional sibling .npy depth grids.
package frames

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"

	"gocv.io/x/gocv"

	"depthmark/domain/depth"
	"depthmark/domain/tracking"
)

// framePattern matches frame file names like frame_000123.jpg.
var framePattern = regexp.MustCompile(`^frame_(\d+)\.(?i:jpe?g)$`)

// Pair is one frame's files. Depth is empty when no grid was recorded.
type Pair struct {
	Number int
	RGB    string
	Depth  string
}

// SourceStats counts decode activity since the source was opened.
type SourceStats struct {
	FramesDecoded int64
	GridsLoaded   int64
	DecodeErrors  int64
}

// Source is a directory-backed frame sequence. Reads are stateless, so the
// source is safe for concurrent use; decode counters are atomic.
type Source struct {
	dir    string
	pairs  []Pair
	logger *slog.Logger

	framesDecoded atomic.Int64
	gridsLoaded   atomic.Int64
	decodeErrors  atomic.Int64
}

var _ tracking.Sequence = (*Source)(nil)

// Open scans dir for numbered frames and returns a source over them, sorted
// by frame number. An empty directory is an error: there is nothing to
// annotate.
func Open(dir string, logger *slog.Logger) (*Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan frames dir: %w", err)
	}

	var pairs []Pair
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := framePattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		p := Pair{Number: n, RGB: filepath.Join(dir, e.Name())}
		npy := strings.TrimSuffix(p.RGB, filepath.Ext(p.RGB)) + ".npy"
		if _, err := os.Stat(npy); err == nil {
			p.Depth = npy
		}
		pairs = append(pairs, p)
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("no frames found in %s", dir)
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Number < pairs[j].Number })

	withDepth := 0
	for _, p := range pairs {
		if p.Depth != "" {
			withDepth++
		}
	}
	logger.Info("frame sequence opened",
		slog.String("dir", dir),
		slog.Int("frames", len(pairs)),
		slog.Int("with_depth", withDepth),
	)
	return &Source{dir: dir, pairs: pairs, logger: logger}, nil
}

// Len reports the number of frames.
func (s *Source) Len() int { return len(s.pairs) }

// Dir reports the scanned directory.
func (s *Source) Dir() string { return s.dir }

// Pair returns the file pair at index i.
func (s *Source) Pair(i int) (Pair, error) {
	if i < 0 || i >= len(s.pairs) {
		return Pair{}, fmt.Errorf("frame index %d out of range [0,%d)", i, len(s.pairs))
	}
	return s.pairs[i], nil
}

// Frame decodes the frame at index i into an OpenCV matrix suitable for the
// tracker. The caller owns the returned frame and must Close it.
func (s *Source) Frame(i int) (tracking.Frame, error) {
	p, err := s.Pair(i)
	if err != nil {
		return nil, err
	}
	mat := gocv.IMRead(p.RGB, gocv.IMReadColor)
	if mat.Empty() {
		mat.Close()
		s.decodeErrors.Add(1)
		return nil, fmt.Errorf("decode frame %s", p.RGB)
	}
	s.framesDecoded.Add(1)
	return tracking.WrapMat(mat), nil
}

// Image decodes the frame at index i as a Go image for rendering.
func (s *Source) Image(i int) (image.Image, error) {
	f, err := s.Frame(i)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := f.(tracking.MatFrame).Mat().ToImage()
	if err != nil {
		s.decodeErrors.Add(1)
		return nil, fmt.Errorf("convert frame %d: %w", i, err)
	}
	return img, nil
}

// DepthGrid loads the depth grid for frame i. Frames recorded without depth
// return (nil, nil); callers show them as "no data".
func (s *Source) DepthGrid(i int) (*depth.Grid, error) {
	p, err := s.Pair(i)
	if err != nil {
		return nil, err
	}
	if p.Depth == "" {
		return nil, nil
	}
	g, err := depth.Load(p.Depth)
	if err != nil {
		s.decodeErrors.Add(1)
		return nil, err
	}
	s.gridsLoaded.Add(1)
	return g, nil
}

// Size reports the pixel dimensions of the sequence, probed from the first
// frame.
func (s *Source) Size() (int, int, error) {
	f, err := s.Frame(0)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()
	b := f.Bounds()
	return b.Dx(), b.Dy(), nil
}

// Stats snapshots the decode counters.
func (s *Source) Stats() SourceStats {
	return SourceStats{
		FramesDecoded: s.framesDecoded.Load(),
		GridsLoaded:   s.gridsLoaded.Load(),
		DecodeErrors:  s.decodeErrors.Load(),
	}
}
