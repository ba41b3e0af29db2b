// Package intent decides what a free-text query about the process
// knowledge base is asking for. The primary path is one LLM call; a
// deterministic keyword fallback covers missing or failing clients.
package intent

// Intent is the classified purpose of a query, drawn from a closed
// vocabulary.
type Intent string

const (
	Statistics    Intent = "statistics"
	Departments   Intent = "departments"
	ListAll       Intent = "list_all"
	FindProcess   Intent = "find_process"
	PeopleRoles   Intent = "people_roles"
	Pricing       Intent = "pricing"
	Categories    Intent = "categories"
	GeneralSearch Intent = "general_search"
	OffTopic      Intent = "off_topic"
	NoAIAvailable Intent = "no_ai_available"
)

// parseOrder fixes the precedence when mapping a free-text LLM reply
// back onto the vocabulary: the first entry whose name appears in the
// reply wins. The order matters for ambiguous replies ("list_all or
// statistics"), so it is a package constant rather than map iteration.
var parseOrder = []Intent{
	Statistics,
	Departments,
	ListAll,
	FindProcess,
	PeopleRoles,
	Pricing,
	Categories,
	GeneralSearch,
	OffTopic,
}
