package sequence

// View is the set of display regions the sequencer mutates.
type View interface {
	SetText(text string)
	SetTextVisible(visible bool)

	// SetPrimarySource swaps the primary visual to the asset at src.
	SetPrimarySource(src string)
	// SetPrimaryVisible shows or hides the primary visual. Hiding starts a
	// fade-out and showing starts a fade-in where the view supports it.
	SetPrimaryVisible(visible bool)

	// SetSecondaryDisplayed takes the secondary icon in or out of layout.
	SetSecondaryDisplayed(displayed bool)
	// SetSecondaryOpacity sets the icon's opacity in [0,1].
	SetSecondaryOpacity(opacity float64)
}

// Recorder is a View that remembers the current state of every region and
// the history of texts and sources it was given.
type Recorder struct {
	Text               string
	TextVisible        bool
	PrimarySource      string
	PrimaryVisible     bool
	SecondaryDisplayed bool
	SecondaryOpacity   float64

	Texts        []string
	Sources      []string
	PrimaryHides int
}

var _ View = (*Recorder)(nil)

func (r *Recorder) SetText(text string) {
	r.Text = text
	r.Texts = append(r.Texts, text)
}

func (r *Recorder) SetTextVisible(visible bool) { r.TextVisible = visible }

func (r *Recorder) SetPrimarySource(src string) {
	r.PrimarySource = src
	r.Sources = append(r.Sources, src)
}

func (r *Recorder) SetPrimaryVisible(visible bool) {
	if !visible {
		r.PrimaryHides++
	}
	r.PrimaryVisible = visible
}

func (r *Recorder) SetSecondaryDisplayed(displayed bool) { r.SecondaryDisplayed = displayed }

func (r *Recorder) SetSecondaryOpacity(opacity float64) { r.SecondaryOpacity = opacity }

// SecondaryShown reports whether the icon is in layout at full opacity.
func (r *Recorder) SecondaryShown() bool {
	return r.SecondaryDisplayed && r.SecondaryOpacity >= 1
}
