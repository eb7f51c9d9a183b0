// Package render builds platform-neutral response envelopes. Channel
// adapters translate envelopes into their native message format; nothing
// in this package knows about Discord.
package render

// Kind drives the visual treatment of an envelope (color, icon).
type Kind int

const (
	// KindInfo is a neutral informational response.
	KindInfo Kind = iota
	// KindSuccess is a completed operation.
	KindSuccess
	// KindWarning is a refused or partially-applied operation.
	KindWarning
	// KindError is a failed operation.
	KindError
)

// Field is a named value inside an envelope.
type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Envelope is one response to render. Fields keep insertion order.
type Envelope struct {
	Kind        Kind
	Title       string
	Description string
	Fields      []Field
	Footer      string
}

// Info creates a neutral envelope.
func Info(title string) *Envelope {
	return &Envelope{Kind: KindInfo, Title: title}
}

// Success creates a success envelope.
func Success(title string) *Envelope {
	return &Envelope{Kind: KindSuccess, Title: title}
}

// Warning creates a warning envelope.
func Warning(title string) *Envelope {
	return &Envelope{Kind: KindWarning, Title: title}
}

// Error creates an error envelope.
func Error(title string) *Envelope {
	return &Envelope{Kind: KindError, Title: title}
}

// WithDescription sets the envelope body.
func (e *Envelope) WithDescription(desc string) *Envelope {
	e.Description = desc
	return e
}

// WithField appends a block field.
func (e *Envelope) WithField(name, value string) *Envelope {
	e.Fields = append(e.Fields, Field{Name: name, Value: value})
	return e
}

// WithInlineField appends an inline field.
func (e *Envelope) WithInlineField(name, value string) *Envelope {
	e.Fields = append(e.Fields, Field{Name: name, Value: value, Inline: true})
	return e
}

// WithFooter sets the envelope footer.
func (e *Envelope) WithFooter(footer string) *Envelope {
	e.Footer = footer
	return e
}
