package domain

import "fmt"

type AgentKind string

const (
	AgentKindAgent        AgentKind = "Agent"
	AgentKindPerson       AgentKind = "Person"
	AgentKindOrganization AgentKind = "Organization"
)

// Agent is a prov:Agent, prov:Person or prov:Organization depending on Kind.
type Agent struct {
	Kind       AgentKind `json:"-"`
	MBox       string    `json:"mbox,omitempty"`       // foaf:mbox
	FirstName  string    `json:"first_name,omitempty"` // foaf:firstName
	LastName   string    `json:"last_name,omitempty"`  // foaf:lastName
	Identifier string    `json:"identifier,omitempty"` // m4i:identifier, e.g. an ORCID
}

func NewPerson(p Agent) (*Agent, error) {
	p.Kind = AgentKindPerson
	return newAgent(p)
}

func NewOrganization(o Agent) (*Agent, error) {
	o.Kind = AgentKindOrganization
	return newAgent(o)
}

func newAgent(a Agent) (*Agent, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

func (a *Agent) Validate() error {
	if a.Kind == "" {
		a.Kind = AgentKindAgent
	}

	v := newValidation(string(a.Kind))
	v.check("mbox", a.MBox, validateEmail(a.MBox))

	if a.Identifier != "" {
		if a.Kind != AgentKindPerson {
			v.check("identifier", a.Identifier, ErrNotAllowed)
		} else {
			v.check("identifier", a.Identifier, validateURI(a.Identifier, "http", "https"))
		}
	}

	return v.err()
}

func (a Agent) String() string {
	if a.Kind == AgentKindPerson {
		return fmt.Sprintf("%s(%s %s, %s, %s)", a.Kind, a.FirstName, a.LastName, a.MBox, a.Identifier)
	}
	return fmt.Sprintf("%s(%s)", a.Kind, a.MBox)
}

func (a Agent) ToDict() map[string]any {
	d := map[string]any{}
	putText(d, "type", string(a.Kind))
	putText(d, "mbox", a.MBox)
	putText(d, "first_name", a.FirstName)
	putText(d, "last_name", a.LastName)
	putText(d, "identifier", a.Identifier)
	return d
}

// AgentFromDict builds an agent of the kind named by the "type" key. Dicts
// without a type become a Person.
func AgentFromDict(d map[string]any) (*Agent, error) {
	r := dictReader{record: "Agent", d: d}
	a := Agent{
		Kind:       AgentKindPerson,
		MBox:       r.text("mbox"),
		FirstName:  r.text("first_name"),
		LastName:   r.text("last_name"),
		Identifier: r.text("identifier"),
	}

	if kind := r.text("type"); kind != "" {
		switch AgentKind(kind) {
		case AgentKindAgent, AgentKindPerson, AgentKindOrganization:
			a.Kind = AgentKind(kind)
		default:
			r.fail("type", kind, ErrInvalidType)
		}
	}

	if err := r.err(); err != nil {
		return nil, err
	}
	return newAgent(a)
}
