// Package record defines the phone directory entry and the live filter.
package record

import "fmt"

// Ident identifies who a record belongs to. It is a closed sum type: the
// only implementations are Name, Company and Both.
type Ident interface {
	isIdent()
	// Fields returns the searchable text of the identifier.
	Fields() []string
	String() string
}

// Name is a person-only identifier.
type Name string

// Company is an organisation-only identifier.
type Company string

// Both names a person at a company.
type Both struct {
	Company string
	Name    string
}

func (Name) isIdent()    {}
func (Company) isIdent() {}
func (Both) isIdent()    {}

func (n Name) Fields() []string    { return []string{string(n)} }
func (c Company) Fields() []string { return []string{string(c)} }
func (b Both) Fields() []string    { return []string{b.Name, b.Company} }

func (n Name) String() string    { return string(n) }
func (c Company) String() string { return string(c) }
func (b Both) String() string    { return fmt.Sprintf("%s (%s)", b.Name, b.Company) }

// Record is one directory entry. ID is zero until the record is stored.
type Record struct {
	ID    int64
	Ident Ident
	Phone string
}

// NewIdent builds the identifier variant implied by which parts are present.
// It returns nil when both are empty.
func NewIdent(name, company string) Ident {
	switch {
	case name != "" && company != "":
		return Both{Company: company, Name: name}
	case name != "":
		return Name(name)
	case company != "":
		return Company(company)
	}
	return nil
}

// Parts splits an identifier back into its name and company columns.
func Parts(id Ident) (name, company string) {
	switch v := id.(type) {
	case Name:
		return string(v), ""
	case Company:
		return "", string(v)
	case Both:
		return v.Name, v.Company
	}
	return "", ""
}

// String renders the record the way listings show it.
func (r Record) String() string {
	label := ""
	if r.Ident != nil {
		label = r.Ident.String()
	}
	return fmt.Sprintf("%s Phone: %s", label, r.Phone)
}
