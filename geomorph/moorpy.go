package geomorph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// moorpyMagic opens every MoorPy bathymetry grid file.
const moorpyMagic = "--- MoorPy Bathymetry Input File ---"

// ReadMoorPy loads a MoorPy bathymetry grid file from disk.
func ReadMoorPy(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geomorph: open bathymetry: %w", err)
	}
	defer f.Close()
	return ParseMoorPy(f)
}

// ParseMoorPy reads the MoorPy bathymetry grid format:
//
//	--- MoorPy Bathymetry Input File ---
//	nGridX <nx>
//	nGridY <ny>
//	<x_0> ... <x_nx-1>
//	<y_0> <depth_00> ... <depth_(nx-1)0>
//	...
//
// Each data row carries one y coordinate followed by the depths across the
// x axis at that y. Blank lines between data rows are tolerated; the number
// of data rows must match nGridY.
//
// Errors: ErrBadHeader, ErrBadRow, ErrBadGrid (via NewGrid on the result).
func ParseMoorPy(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	line, err := nextLine(sc, false)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(line, moorpyMagic) {
		return nil, fmt.Errorf("%w: missing magic line", ErrBadHeader)
	}

	nx, err := headerCount(sc, "nGridX")
	if err != nil {
		return nil, err
	}
	ny, err := headerCount(sc, "nGridY")
	if err != nil {
		return nil, err
	}

	line, err = nextLine(sc, true)
	if err != nil {
		return nil, fmt.Errorf("%w: missing x coordinate line", ErrBadHeader)
	}
	x, err := parseFloats(strings.Fields(line))
	if err != nil || len(x) != nx {
		return nil, fmt.Errorf("%w: want %d x coordinates, line %q", ErrBadHeader, nx, line)
	}

	y := make([]float64, 0, ny)
	values := mat.NewDense(ny, nx, nil)
	for j := 0; j < ny; j++ {
		line, err = nextLine(sc, true)
		if err != nil {
			return nil, fmt.Errorf("%w: %d of %d data rows read", ErrBadRow, j, ny)
		}
		fields, err := parseFloats(strings.Fields(line))
		if err != nil || len(fields) != nx+1 {
			return nil, fmt.Errorf("%w: row %d %q", ErrBadRow, j, line)
		}
		y = append(y, fields[0])
		values.SetRow(j, fields[1:])
	}

	return NewGrid(x, y, values)
}

// nextLine advances to the next line, optionally skipping blank ones.
func nextLine(sc *bufio.Scanner, skipBlank bool) (string, error) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" && skipBlank {
			continue
		}
		return line, nil
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("geomorph: read bathymetry: %w", err)
	}
	return "", io.EOF
}

// headerCount reads one "key <int>" header line.
func headerCount(sc *bufio.Scanner, key string) (int, error) {
	line, err := nextLine(sc, false)
	if err != nil {
		return 0, fmt.Errorf("%w: missing %s line", ErrBadHeader, key)
	}
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[0] != key {
		return 0, fmt.Errorf("%w: want %q, line %q", ErrBadHeader, key, line)
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %s count %q", ErrBadHeader, key, fields[1])
	}
	return n, nil
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
