package domain

// Relation names a related entity that a read can eagerly join.
type Relation string

const (
	// RelLeadResearcher joins a project's lead researcher.
	RelLeadResearcher Relation = "lead_researcher"
)

// Field names double as column names. Each repository whitelists the ones
// it accepts as an order field.
const (
	FieldProjectID        = "project_id"
	FieldProjectTitle     = "project_title"
	FieldResearchField    = "research_field"
	FieldStartDate        = "start_date"
	FieldEndDate          = "end_date"
	FieldBudget           = "budget"
	FieldLeadResearcherID = "lead_researcher_id"

	FieldResearcherID = "researcher_id"
	FieldFullName     = "full_name"

	FieldAccountID    = "account_id"
	FieldEmail        = "email"
	FieldPasswordHash = "password_hash"
	FieldRole         = "role"
)

// Order is a sort key plus direction.
type Order struct {
	Field     string
	Ascending bool
}

// Asc sorts by field in ascending order.
func Asc(field string) Order { return Order{Field: field, Ascending: true} }

// Desc sorts by field in descending order.
func Desc(field string) Order { return Order{Field: field} }
