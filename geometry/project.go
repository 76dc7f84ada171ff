package geometry

import (
	"github.com/maplibre-tiles/mlt-go/errs"
	"github.com/maplibre-tiles/mlt-go/format"
)

// Projected is one feature's geometry rebuilt into nested coordinate
// slices, the shape a GeoJSON serializer (out of scope here) would
// consume directly. Exactly one of the type-specific fields is
// populated, matching Type.
type Projected struct {
	Type format.GeometryType

	Point    Coordinate
	Points   []Coordinate   // MultiPoint
	Line     []Coordinate   // LineString
	Lines    [][]Coordinate // MultiLineString
	Rings    [][]Coordinate // Polygon: index 0 is the shell, the rest are holes; each ring is closed
	Polygons [][][]Coordinate
}

// ProjectAll walks every feature in d once, in order, reconstructing its
// nested coordinates per spec.md §4.6's type-dispatch rules. This is a
// read-only helper for self-consistency checks and visualization; it is
// not part of the wire format.
func ProjectAll(d *Decoded) ([]*Projected, error) {
	containsPolygon := false

	for _, gt := range d.VectorTypes {
		if gt == format.GeometryPolygon || gt == format.GeometryMultiPolygon {
			containsPolygon = true

			break
		}
	}

	vertexCursor := 0
	geomCursor, partCursor, ringCursor := 0, 0, 0

	nextVertex := func() (Coordinate, error) {
		c, err := VertexAt(d.Vertices, d.VertexOffsets, vertexCursor)
		if err != nil {
			return Coordinate{}, err
		}

		vertexCursor++

		return c, nil
	}

	readLine := func(numVertices int, closeRing bool) ([]Coordinate, error) {
		line := make([]Coordinate, 0, numVertices+1)

		for i := 0; i < numVertices; i++ {
			c, err := nextVertex()
			if err != nil {
				return nil, err
			}

			line = append(line, c)
		}

		if closeRing && len(line) > 0 {
			line = append(line, line[0])
		}

		return line, nil
	}

	span := func(cursor *int, offsets []uint32, missing error) (int, error) {
		if offsets == nil {
			return 0, missing
		}

		if *cursor+1 >= len(offsets) {
			return 0, errs.ErrGeometryOffsetOOB
		}

		n := int(offsets[*cursor+1] - offsets[*cursor])
		*cursor++

		return n, nil
	}

	out := make([]*Projected, 0, len(d.VectorTypes))

	for _, gt := range d.VectorTypes {
		p := &Projected{Type: gt}

		switch gt {
		case format.GeometryPoint:
			c, err := nextVertex()
			if err != nil {
				return nil, err
			}

			p.Point = c

		case format.GeometryMultiPoint:
			n, err := span(&geomCursor, d.GeometryOffsets, errs.ErrNoGeometryOffsets)
			if err != nil {
				return nil, err
			}

			pts := make([]Coordinate, 0, n)

			for i := 0; i < n; i++ {
				c, err := nextVertex()
				if err != nil {
					return nil, err
				}

				pts = append(pts, c)
			}

			p.Points = pts

		case format.GeometryLineString:
			n, err := lineSpan(containsPolygon, &partCursor, &ringCursor, d.PartOffsets, d.RingOffsets, span)
			if err != nil {
				return nil, err
			}

			p.Line, err = readLine(n, false)
			if err != nil {
				return nil, err
			}

		case format.GeometryPolygon:
			numRings, err := span(&partCursor, d.PartOffsets, errs.ErrNoPartOffsets)
			if err != nil {
				return nil, err
			}

			rings, err := readRings(numRings, &ringCursor, d.RingOffsets, span, readLine)
			if err != nil {
				return nil, err
			}

			p.Rings = rings

		case format.GeometryMultiLineString:
			numLines, err := span(&geomCursor, d.GeometryOffsets, errs.ErrNoGeometryOffsets)
			if err != nil {
				return nil, err
			}

			lines := make([][]Coordinate, 0, numLines)

			for l := 0; l < numLines; l++ {
				nv, err := lineSpan(containsPolygon, &partCursor, &ringCursor, d.PartOffsets, d.RingOffsets, span)
				if err != nil {
					return nil, err
				}

				line, err := readLine(nv, false)
				if err != nil {
					return nil, err
				}

				lines = append(lines, line)
			}

			p.Lines = lines

		case format.GeometryMultiPolygon:
			numPolys, err := span(&geomCursor, d.GeometryOffsets, errs.ErrNoGeometryOffsets)
			if err != nil {
				return nil, err
			}

			polys := make([][][]Coordinate, 0, numPolys)

			for poly := 0; poly < numPolys; poly++ {
				numRings, err := span(&partCursor, d.PartOffsets, errs.ErrNoPartOffsets)
				if err != nil {
					return nil, err
				}

				rings, err := readRings(numRings, &ringCursor, d.RingOffsets, span, readLine)
				if err != nil {
					return nil, err
				}

				polys = append(polys, rings)
			}

			p.Polygons = polys

		default:
			return nil, errs.NewInvalidEnum("geometry-type", uint8(gt))
		}

		out = append(out, p)
	}

	return out, nil
}

type spanFunc func(cursor *int, offsets []uint32, missing error) (int, error)

type readLineFunc func(numVertices int, closeRing bool) ([]Coordinate, error)

func lineSpan(containsPolygon bool, partCursor, ringCursor *int, partOffsets, ringOffsets []uint32, span spanFunc) (int, error) {
	if containsPolygon {
		return span(ringCursor, ringOffsets, errs.ErrNoRingOffsets)
	}

	return span(partCursor, partOffsets, errs.ErrNoPartOffsets)
}

func readRings(numRings int, ringCursor *int, ringOffsets []uint32, span spanFunc, readLine readLineFunc) ([][]Coordinate, error) {
	rings := make([][]Coordinate, 0, numRings)

	for r := 0; r < numRings; r++ {
		nv, err := span(ringCursor, ringOffsets, errs.ErrNoRingOffsets)
		if err != nil {
			return nil, err
		}

		ring, err := readLine(nv, true)
		if err != nil {
			return nil, err
		}

		rings = append(rings, ring)
	}

	return rings, nil
}

// Project reconstructs a single feature's coordinates. It re-walks the
// whole column from the start since reconstruction is inherently
// sequential across cursor-sharing offset levels; callers projecting
// many features should use ProjectAll instead.
func (d *Decoded) Project(feature int) (*Projected, error) {
	all, err := ProjectAll(d)
	if err != nil {
		return nil, err
	}

	if feature < 0 || feature >= len(all) {
		return nil, errs.ErrGeometryOffsetOOB
	}

	return all[feature], nil
}

// allCoordinates flattens every coordinate this projection carries, used
// by the bounding-box index.
func (p *Projected) allCoordinates() []Coordinate {
	switch p.Type {
	case format.GeometryPoint:
		return []Coordinate{p.Point}
	case format.GeometryMultiPoint:
		return p.Points
	case format.GeometryLineString:
		return p.Line
	case format.GeometryMultiLineString:
		out := make([]Coordinate, 0)
		for _, l := range p.Lines {
			out = append(out, l...)
		}

		return out
	case format.GeometryPolygon:
		out := make([]Coordinate, 0)
		for _, r := range p.Rings {
			out = append(out, r...)
		}

		return out
	case format.GeometryMultiPolygon:
		out := make([]Coordinate, 0)
		for _, poly := range p.Polygons {
			for _, r := range poly {
				out = append(out, r...)
			}
		}

		return out
	default:
		return nil
	}
}

// bounds computes the projection's integer bounding box. ok is false
// when the projection carries no coordinates.
func (p *Projected) bounds() (minX, minY, maxX, maxY int32, ok bool) {
	coords := p.allCoordinates()
	if len(coords) == 0 {
		return 0, 0, 0, 0, false
	}

	minX, minY = coords[0].X, coords[0].Y
	maxX, maxY = coords[0].X, coords[0].Y

	for _, c := range coords[1:] {
		if c.X < minX {
			minX = c.X
		}

		if c.Y < minY {
			minY = c.Y
		}

		if c.X > maxX {
			maxX = c.X
		}

		if c.Y > maxY {
			maxY = c.Y
		}
	}

	return minX, minY, maxX, maxY, true
}
