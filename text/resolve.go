package text

// Resolution is the outcome of Resolve.
type Resolution struct {
	// Faces holds one face per requested size, in request order.
	Faces []Face

	// Path is the candidate that served the faces; empty on fallback.
	Path string

	// Name is the family name of the chosen font.
	Name string

	// Fallback is true when every candidate failed and the built-in
	// default face is used for all sizes.
	Fallback bool

	// Rejected holds a *CandidateError for every candidate tried and
	// rejected, in order.
	Rejected []error
}

// Face returns the i-th resolved face, or the default face when i is out of range.
func (r Resolution) Face(i int) Face {
	if i < 0 || i >= len(r.Faces) {
		return DefaultFace()
	}
	return r.Faces[i]
}

// Resolve tries the candidate font files in order and returns faces at the
// requested sizes from the first one that loads. A candidate is rejected
// when it cannot be read or parsed, or when any size is invalid for it.
// Rejections are recorded but never returned as an error: when all
// candidates fail the built-in default face is used for every size, so
// Resolve always succeeds.
func Resolve(candidates []string, sizes ...float64) Resolution {
	var res Resolution

	for _, path := range candidates {
		source, faces, err := loadCandidate(path, sizes)
		if err != nil {
			res.Rejected = append(res.Rejected, &CandidateError{Path: path, Err: err})
			continue
		}
		res.Faces = faces
		res.Path = path
		res.Name = source.Name()
		return res
	}

	res.Fallback = true
	res.Name = "basicfont 7x13"
	res.Faces = make([]Face, len(sizes))
	for i := range sizes {
		res.Faces[i] = DefaultFace()
	}
	return res
}

// loadCandidate loads one font file at every size.
func loadCandidate(path string, sizes []float64) (*FontSource, []Face, error) {
	source, err := NewFontSourceFromFile(path)
	if err != nil {
		return nil, nil, err
	}

	faces := make([]Face, len(sizes))
	for i, size := range sizes {
		face, err := source.NewFace(size)
		if err != nil {
			return nil, nil, err
		}
		faces[i] = face
	}
	return source, faces, nil
}
