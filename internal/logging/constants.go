package logging

// Standardized field names for structured logging. Keeping these in one
// place makes log output consistent and easy to filter.
const (
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldColumn     = "column"
	FieldGroups     = "groups"
	FieldThreshold  = "threshold"
	FieldCount      = "count"
	FieldCapexRows  = "capex_rows"
	FieldCapexSum   = "capex_sum"
	FieldRulesFile  = "rules_file"
)
