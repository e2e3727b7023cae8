package filter

import (
	"fmt"
	"strings"
)

// likeEscaper neutralizes LIKE metacharacters in user-supplied search
// text so the pattern matches the query literally, the same way
// Predicate.Match does. The backslash is declared via ESCAPE '\' on the
// compiled expression.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// columns maps predicate fields to task table columns.
var columns = map[Field]string{
	FieldTitle:       "title",
	FieldDescription: "description",
	FieldStatus:      "status",
	FieldPriority:    "priority",
	FieldOwnerID:     "owner_id",
	FieldIsActive:    "is_active",
	FieldDueDate:     "due_date",
	FieldCreatedAt:   "created_at",
}

// WhereClause compiles the predicate into a SQL boolean expression with
// positional placeholders numbered from start, plus the matching argument
// values. A tautology compiles to an empty expression, meaning the caller
// should omit the WHERE clause entirely.
//
// Text-search nodes compile to LOWER(col) LIKE with a pre-lowered %...%
// pattern, so matching stays ASCII-style case-insensitive regardless of
// database collation. LIKE metacharacters in the query are escaped, so
// the pattern matches the query text literally. Comparisons against a
// NULL due_date are false in SQL, which matches the in-memory semantics
// of Predicate.Match.
func WhereClause(p Predicate, start int) (string, []any) {
	var args []any
	expr := appendExpr(p, &args, start)
	return expr, args
}

func appendExpr(p Predicate, args *[]any, start int) string {
	switch p.op {
	case opAnd, opOr:
		parts := make([]string, 0, len(p.children))
		for _, child := range p.children {
			expr := appendExpr(child, args, start)
			if expr != "" {
				parts = append(parts, expr)
			}
		}
		if len(parts) == 0 {
			return ""
		}
		if len(parts) == 1 {
			return parts[0]
		}
		sep := " AND "
		if p.op == opOr {
			sep = " OR "
		}
		return "(" + strings.Join(parts, sep) + ")"

	case opEq:
		*args = append(*args, p.value)
		return fmt.Sprintf("%s = $%d", columns[p.field], start+len(*args)-1)

	case opGte:
		*args = append(*args, p.value)
		return fmt.Sprintf("%s >= $%d", columns[p.field], start+len(*args)-1)

	case opLte:
		*args = append(*args, p.value)
		return fmt.Sprintf("%s <= $%d", columns[p.field], start+len(*args)-1)

	case opContainsFold:
		*args = append(*args, "%"+likeEscaper.Replace(p.value.(string))+"%")
		return fmt.Sprintf(`LOWER(%s) LIKE $%d ESCAPE '\'`, columns[p.field], start+len(*args)-1)
	}
	return ""
}
