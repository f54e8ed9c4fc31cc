package postgres

import (
	"fmt"
	"strings"

	"conferencecentral/internal/query"
)

// planSQL renders a compiled plan into WHERE clauses and bind arguments.
// Conditions keep their submission order; argument numbering starts at
// firstArg so callers can prepend scope conditions (ancestor key).
func planSQL(plan *query.Plan, extra []query.Condition, firstArg int) (clauses []string, args []any) {
	conds := plan.Conditions
	if len(extra) > 0 {
		conds = append(append([]query.Condition{}, conds...), extra...)
	}
	n := firstArg
	for _, c := range conds {
		if c.Field.Repeated {
			// Equality on a repeated property means membership.
			clauses = append(clauses, fmt.Sprintf("$%d = ANY(%s)", n, c.Field.Column))
		} else {
			clauses = append(clauses, fmt.Sprintf("%s %s $%d", c.Field.Column, c.Op, n))
		}
		args = append(args, c.Value)
		n++
	}
	return clauses, args
}

// orderSQL renders the plan's sort order: inequality column first when
// present, entity name as the stable tiebreak.
func orderSQL(plan *query.Plan) string {
	return "ORDER BY " + strings.Join(plan.OrderColumns(), ", ")
}
