package catalog

// Category identifies one score dimension of the closed category set.
type Category string

// Categories is the canonical, ordered category set.
type Categories []Category

// Index returns the canonical position of a category, or -1.
func (cats Categories) Index(category Category) int {
	for i, c := range cats {
		if c == category {
			return i
		}
	}
	return -1
}

// Contains reports whether the category belongs to the set.
func (cats Categories) Contains(category Category) bool {
	return cats.Index(category) >= 0
}

// QuestionType selects the answer shape a question accepts.
type QuestionType string

const (
	// TypeText is a single-line free text question.
	TypeText QuestionType = "text"
	// TypeTextarea is a multiline free text question.
	TypeTextarea QuestionType = "textarea"
	// TypeSingle picks exactly one option.
	TypeSingle QuestionType = "single"
	// TypeSingleOther picks one option or supplies freeform text instead.
	TypeSingleOther QuestionType = "single_other"
	// TypeMulti picks a capped set of options.
	TypeMulti QuestionType = "multi"
)

// Known reports whether the type is one of the recognized question types.
func (t QuestionType) Known() bool {
	switch t {
	case TypeText, TypeTextarea, TypeSingle, TypeSingleOther, TypeMulti:
		return true
	default:
		return false
	}
}

// IsText reports whether the type takes free text only.
func (t QuestionType) IsText() bool {
	return t == TypeText || t == TypeTextarea
}

// Display is a presentation hint for select questions. It never affects scoring.
type Display string

const (
	DisplayButton Display = "button"
	DisplayColor  Display = "color"
	DisplayShape  Display = "shape"
	DisplayImage  Display = "image"
	DisplayAudio  Display = "audio"
)

// Option is one selectable choice. Value and Src carry display data only.
type Option struct {
	Label string `json:"text" yaml:"text"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	Src   string `json:"src,omitempty" yaml:"src,omitempty"`
}

// Question is one entry of the question catalog.
type Question struct {
	ID          string       `json:"id" yaml:"id"`
	Prompt      string       `json:"question" yaml:"question"`
	Type        QuestionType `json:"type" yaml:"type"`
	Display     Display      `json:"display,omitempty" yaml:"display,omitempty"`
	Options     []Option     `json:"options,omitempty" yaml:"options,omitempty"`
	Limit       int          `json:"limit,omitempty" yaml:"limit,omitempty"`
	NoneOption  string       `json:"none_option,omitempty" yaml:"none_option,omitempty"`
	Placeholder string       `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// OptionIndex returns the index of the option with the given label, or -1.
func (q Question) OptionIndex(label string) int {
	for i, option := range q.Options {
		if option.Label == label {
			return i
		}
	}
	return -1
}

// HasNone reports whether the question designates a mutually exclusive none option.
func (q Question) HasNone() bool {
	return q.NoneOption != ""
}

// IsNone reports whether label is the question's none option.
func (q Question) IsNone(label string) bool {
	return q.HasNone() && label == q.NoneOption
}

// QuestionSpec is the on-disk question catalog.
type QuestionSpec struct {
	Version   int        `json:"version" yaml:"version"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// WeightOption maps one option label to its sparse category contributions.
type WeightOption struct {
	Label   string           `json:"text" yaml:"text"`
	Weights map[Category]int `json:"weights,omitempty" yaml:"weights,omitempty"`
}

// WeightQuestion groups the weight entries authored for one prompt.
type WeightQuestion struct {
	Prompt  string         `json:"question" yaml:"question"`
	Options []WeightOption `json:"options" yaml:"options"`
}

// Option returns the weight entry for a label. The first match wins.
func (wq WeightQuestion) Option(label string) (WeightOption, bool) {
	for _, option := range wq.Options {
		if option.Label == label {
			return option, true
		}
	}
	return WeightOption{}, false
}

// WeightSpec is the on-disk weight catalog. It also declares the category set.
type WeightSpec struct {
	Version    int              `json:"version" yaml:"version"`
	Categories Categories       `json:"categories" yaml:"categories"`
	Questions  []WeightQuestion `json:"questions" yaml:"questions"`
}

// Question returns the weight group for a prompt. The first match wins.
func (ws WeightSpec) Question(prompt string) (WeightQuestion, bool) {
	for _, question := range ws.Questions {
		if question.Prompt == prompt {
			return question, true
		}
	}
	return WeightQuestion{}, false
}

// NormalizationSpec is the on-disk label normalization map.
type NormalizationSpec struct {
	Version int               `json:"version" yaml:"version"`
	Prompts map[string]string `json:"prompts,omitempty" yaml:"prompts,omitempty"`
	Options map[string]string `json:"options,omitempty" yaml:"options,omitempty"`
}

// Bundle holds the three catalogs a survey needs. All of it is read-only after load.
type Bundle struct {
	Questions  []Question
	Weights    WeightSpec
	Normalizer Normalizer
}

// Categories returns the canonical category set declared by the weight catalog.
func (b Bundle) Categories() Categories {
	return b.Weights.Categories
}

// Question returns the question with the given id and its position.
func (b Bundle) Question(id string) (Question, int, bool) {
	for i, question := range b.Questions {
		if question.ID == id {
			return question, i, true
		}
	}
	return Question{}, -1, false
}
