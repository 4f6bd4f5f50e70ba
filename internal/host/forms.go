package host

// CloseReason says why a form came back without a selection.
type CloseReason int

const (
	// ReasonClosed means the player dismissed the form.
	ReasonClosed CloseReason = iota
	// ReasonBusy means the host could not display the form right now,
	// typically because another form was already open. Callers are
	// expected to retry.
	ReasonBusy
)

// Form is one of the three displayable form kinds: MenuForm, MessageForm
// or ModalForm.
type Form interface {
	form()
}

// MenuForm is a title, a body and an ordered list of buttons.
type MenuForm struct {
	Title   string
	Body    string
	Buttons []string
}

// MessageForm is a two-choice confirm. Yes is choice 0, No is choice 1.
type MessageForm struct {
	Title string
	Body  string
	Yes   string
	No    string
}

// ModalForm is an ordered list of input fields with a submit label.
type ModalForm struct {
	Title  string
	Fields []Field
	Submit string
}

func (MenuForm) form()    {}
func (MessageForm) form() {}
func (ModalForm) form()   {}

// FieldKind selects which kind of input a Field is.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldDropdown
	FieldSlider
	FieldToggle
)

// Field is one input in a ModalForm. Which members are meaningful depends
// on Kind.
type Field struct {
	Kind    FieldKind
	Label   string
	Default string   // FieldText default value
	Options []string // FieldDropdown choices
	Index   int      // FieldDropdown default index
	Min     int      // FieldSlider lower bound
	Max     int      // FieldSlider upper bound
	Value   int      // FieldSlider default
	On      bool     // FieldToggle default
}

// Response is the asynchronous outcome of ShowForm.
//
// For menu and message forms a confirmed response carries Button. For
// modal forms it carries Fields, one value per declared field in
// declaration order: string for text, int for dropdown (the selected
// index) and slider, bool for toggle.
type Response struct {
	Closed bool
	Reason CloseReason // meaningful only when Closed
	Button int
	Fields []any
}
