package view

// ResumeTab is one of the fixed public resume sections. Switching tabs is
// a pure local state change with no data re-fetch.
type ResumeTab string

const (
	TabExperience ResumeTab = "experience"
	TabEducation  ResumeTab = "education"
	TabSkills     ResumeTab = "skills"
	TabAbout      ResumeTab = "about"
)

// Valid reports whether t names a known resume tab.
func (t ResumeTab) Valid() bool {
	switch t {
	case TabExperience, TabEducation, TabSkills, TabAbout:
		return true
	}
	return false
}

// TabState tracks the single active resume tab.
type TabState struct {
	active ResumeTab
}

// NewTabState starts on the experience tab.
func NewTabState() *TabState {
	return &TabState{active: TabExperience}
}

// Active returns the current tab.
func (s *TabState) Active() ResumeTab { return s.active }

// Select switches to t; unknown tabs are rejected and the state is kept.
func (s *TabState) Select(t ResumeTab) bool {
	if !t.Valid() {
		return false
	}
	s.active = t
	return true
}
