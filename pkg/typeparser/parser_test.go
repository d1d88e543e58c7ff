package typeparser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamtype-labs/typetree/pkg/typeparser"
	"github.com/streamtype-labs/typetree/pkg/typetree"
)

// ---------- Scalar Tests ----------

func TestParseScalar(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantType     string
		wantNullable bool
	}{
		{name: "plain type", input: "INT", wantType: "INT", wantNullable: true},
		{name: "lowercase normalized", input: "bigint", wantType: "BIGINT", wantNullable: true},
		{name: "mixed case", input: "VarChar", wantType: "VARCHAR", wantNullable: true},
		{name: "not null", input: "INT NOT NULL", wantType: "INT", wantNullable: false},
		{name: "explicit null", input: "INT NULL", wantType: "INT", wantNullable: true},
		{name: "lowercase not null", input: "int not null", wantType: "INT", wantNullable: false},
		{name: "length parameter", input: "VARCHAR(255)", wantType: "VARCHAR(255)", wantNullable: true},
		{name: "two parameters", input: "DECIMAL(10,2)", wantType: "DECIMAL(10,2)", wantNullable: true},
		{name: "parameter and not null", input: "DECIMAL(10,2) NOT NULL", wantType: "DECIMAL(10,2)", wantNullable: false},
		{name: "nested parens in parameters", input: "CHAR(MAX(10,20))", wantType: "CHAR(MAX(10,20))", wantNullable: true},
		{name: "multi-word suffix", input: "TIMESTAMP(3) WITH LOCAL TIME ZONE", wantType: "TIMESTAMP(3) WITH LOCAL TIME ZONE", wantNullable: true},
		{name: "suffix with second parameter list", input: "INTERVAL YEAR(4) TO MONTH", wantType: "INTERVAL YEAR(4) TO MONTH", wantNullable: true},
		{name: "multi-word suffix not null", input: "TIMESTAMP WITH TIME ZONE NOT NULL", wantType: "TIMESTAMP WITH TIME ZONE", wantNullable: false},
		{name: "collapsed internal whitespace", input: "TIMESTAMP   WITH   TIME   ZONE", wantType: "TIMESTAMP WITH TIME ZONE", wantNullable: true},
		{name: "surrounding whitespace", input: "  INT  ", wantType: "INT", wantNullable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := typeparser.Parse(tt.input)
			require.NoError(t, err)

			require.Equal(t, typetree.KindScalar, node.Kind())
			assert.Equal(t, tt.wantType, node.TypeName())
			assert.Equal(t, tt.wantNullable, node.Nullable())
			assert.Empty(t, typetree.Members(node))
		})
	}
}

// ---------- Array and Multiset Tests ----------

func TestParseArray(t *testing.T) {
	node, err := typeparser.Parse("ARRAY<INT>")
	require.NoError(t, err)

	require.Equal(t, typetree.KindArray, node.Kind())
	assert.Equal(t, "ARRAY", node.TypeName())
	assert.True(t, node.Nullable())

	members := typetree.Members(node)
	require.Len(t, members, 1)
	assert.Empty(t, members[0].Name, "array element carries no field name")
	assert.Equal(t, "INT", members[0].Type.TypeName())
	assert.True(t, members[0].Type.Nullable())
}

// Nullability of a container and of its element are independent; parsing
// one must not imply or default from the other.
func TestArrayNullabilityIndependence(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantOuter    bool
		wantElement  bool
	}{
		{name: "both markers", input: "ARRAY<INT NOT NULL> NOT NULL", wantOuter: false, wantElement: false},
		{name: "element marker only", input: "ARRAY<INT NOT NULL>", wantOuter: true, wantElement: false},
		{name: "outer marker only", input: "ARRAY<INT> NOT NULL", wantOuter: false, wantElement: true},
		{name: "no markers", input: "ARRAY<INT>", wantOuter: true, wantElement: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := typeparser.Parse(tt.input)
			require.NoError(t, err)

			arr, ok := node.(*typetree.Array)
			require.True(t, ok)
			assert.Equal(t, tt.wantOuter, arr.Nullable())
			assert.Equal(t, tt.wantElement, arr.Elem.Nullable())
		})
	}
}

func TestParseMultiset(t *testing.T) {
	node, err := typeparser.Parse("MULTISET<VARCHAR(10)> NOT NULL")
	require.NoError(t, err)

	ms, ok := node.(*typetree.Multiset)
	require.True(t, ok)
	assert.Equal(t, "MULTISET", ms.TypeName())
	assert.False(t, ms.Nullable())
	assert.Equal(t, "VARCHAR(10)", ms.Elem.TypeName())
	assert.True(t, ms.Elem.Nullable())
}

// ---------- Row Tests ----------

func TestParseRow(t *testing.T) {
	node, err := typeparser.Parse("ROW<`id` BIGINT, `name` VARCHAR(255)>")
	require.NoError(t, err)

	row, ok := node.(*typetree.Row)
	require.True(t, ok)
	assert.Equal(t, "ROW", row.TypeName())
	require.Len(t, row.Fields, 2)

	assert.Equal(t, "id", row.Fields[0].Name)
	assert.Equal(t, "BIGINT", row.Fields[0].Type.TypeName())
	assert.Equal(t, "name", row.Fields[1].Name)
	assert.Equal(t, "VARCHAR(255)", row.Fields[1].Type.TypeName())
}

func TestParseRowBareFieldNames(t *testing.T) {
	node, err := typeparser.Parse("ROW<id INT NOT NULL, user_name VARCHAR, _v2 DOUBLE>")
	require.NoError(t, err)

	row := node.(*typetree.Row)
	require.Len(t, row.Fields, 3)
	assert.Equal(t, "id", row.Fields[0].Name)
	assert.False(t, row.Fields[0].Type.Nullable())
	assert.Equal(t, "user_name", row.Fields[1].Name)
	assert.Equal(t, "_v2", row.Fields[2].Name)
}

func TestParseRowComments(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantComment string
	}{
		{name: "plain comment", input: "ROW<`id` INT 'primary key'>", wantComment: "primary key"},
		{name: "escaped quote unescapes", input: "ROW<`name` VARCHAR 'User''s name'>", wantComment: "User's name"},
		{name: "doubled quotes only", input: "ROW<`q` INT ''''>", wantComment: "'"},
		{name: "empty comment absent", input: "ROW<`id` INT ''>", wantComment: ""},
		{name: "whitespace comment absent", input: "ROW<`id` INT '   '>", wantComment: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := typeparser.Parse(tt.input)
			require.NoError(t, err)

			row := node.(*typetree.Row)
			require.Len(t, row.Fields, 1)
			assert.Equal(t, tt.wantComment, row.Fields[0].Comment)
		})
	}
}

func TestParseRowCommentThenNextField(t *testing.T) {
	node, err := typeparser.Parse("ROW<`a` INT 'first', `b` INT NOT NULL 'second'>")
	require.NoError(t, err)

	row := node.(*typetree.Row)
	require.Len(t, row.Fields, 2)
	assert.Equal(t, "first", row.Fields[0].Comment)
	assert.Equal(t, "second", row.Fields[1].Comment)
	assert.False(t, row.Fields[1].Type.Nullable())
}

func TestParseRowBacktickNameWithSpecialChars(t *testing.T) {
	node, err := typeparser.Parse("ROW<`weird name, with < stuff` INT>")
	require.NoError(t, err)

	row := node.(*typetree.Row)
	require.Len(t, row.Fields, 1)
	assert.Equal(t, "weird name, with < stuff", row.Fields[0].Name)
}

// ---------- Map Tests ----------

func TestParseMap(t *testing.T) {
	node, err := typeparser.Parse("MAP<INT, VARCHAR>")
	require.NoError(t, err)

	require.Equal(t, typetree.KindMap, node.Kind())
	members := typetree.Members(node)
	require.Len(t, members, 2)
	assert.Equal(t, "key", members[0].Name)
	assert.Equal(t, "INT", members[0].Type.TypeName())
	assert.Equal(t, "value", members[1].Name)
	assert.Equal(t, "VARCHAR", members[1].Type.TypeName())
}

func TestParseMapNestedValues(t *testing.T) {
	node, err := typeparser.Parse("MAP<VARCHAR(64) NOT NULL, ARRAY<ROW<`n` INT>>> NOT NULL")
	require.NoError(t, err)

	m := node.(*typetree.Map)
	assert.False(t, m.Nullable())
	assert.False(t, m.Key.Nullable())
	assert.Equal(t, "VARCHAR(64)", m.Key.TypeName())

	arr, ok := m.Value.(*typetree.Array)
	require.True(t, ok)
	row, ok := arr.Elem.(*typetree.Row)
	require.True(t, ok)
	require.Len(t, row.Fields, 1)
	assert.Equal(t, "n", row.Fields[0].Name)
}

// ---------- Nesting and Determinism ----------

func TestNestedNavigation(t *testing.T) {
	node, err := typeparser.Parse("ARRAY<ROW<`id` INT>>")
	require.NoError(t, err)

	members := typetree.Members(node)
	require.Len(t, members, 1)
	require.Equal(t, typetree.KindRow, members[0].Type.Kind())

	rowMembers := typetree.Members(members[0].Type)
	require.Len(t, rowMembers, 1)
	assert.Equal(t, "id", rowMembers[0].Name)
}

func TestParseIsDeterministic(t *testing.T) {
	input := "ROW<`id` BIGINT NOT NULL 'pk', `attrs` MAP<VARCHAR, ARRAY<INT NOT NULL>>> NOT NULL"

	first, err := typeparser.Parse(input)
	require.NoError(t, err)
	second, err := typeparser.Parse(input)
	require.NoError(t, err)

	assert.Equal(t, first, second, "parsing the same input twice yields structurally identical trees")
}

func TestDeepNesting(t *testing.T) {
	node, err := typeparser.Parse("ARRAY<ARRAY<ARRAY<ARRAY<INT>>>>")
	require.NoError(t, err)

	depth := 0
	for typetree.IsCompound(node) {
		depth++
		node = typetree.Members(node)[0].Type
	}
	assert.Equal(t, 4, depth)
	assert.Equal(t, "INT", node.TypeName())
}

func TestMaxDepthExceeded(t *testing.T) {
	_, err := typeparser.ParseWithOptions("ARRAY<ARRAY<ARRAY<INT>>>", typeparser.Options{MaxDepth: 3})
	var depthErr *typeparser.DepthError
	require.ErrorAs(t, err, &depthErr)
	assert.Equal(t, 3, depthErr.Max)

	_, err = typeparser.ParseWithOptions("ARRAY<ARRAY<INT>>", typeparser.Options{MaxDepth: 3})
	require.NoError(t, err)
}

// ---------- Failure Tests ----------

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := typeparser.Parse(input)
		var emptyErr *typeparser.EmptyInputError
		require.ErrorAs(t, err, &emptyErr, "input %q", input)
	}
}

func TestParseFailures(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantMessage string
	}{
		{name: "array missing open", input: "ARRAY INT>", wantMessage: "expected '<' after ARRAY"},
		{name: "array missing close", input: "ARRAY<INT", wantMessage: "expected '>' closing ARRAY"},
		{name: "multiset missing close", input: "MULTISET<INT", wantMessage: "expected '>' closing MULTISET"},
		{name: "map missing comma", input: "MAP<INT>", wantMessage: "expected ',' between map key and value"},
		{name: "map missing close", input: "MAP<INT, VARCHAR", wantMessage: "expected '>' closing MAP"},
		{name: "row missing open", input: "ROW id INT", wantMessage: "expected '<' after ROW"},
		{name: "row missing separator", input: "ROW<`a` INT `b` INT>", wantMessage: "expected ',' or '>' after row field \"a\""},
		{name: "row unclosed at end", input: "ROW<`a` INT", wantMessage: "expected ',' or '>' after row field \"a\", found end of input"},
		{name: "empty row", input: "ROW<>", wantMessage: "row type must declare at least one field"},
		{name: "bare nullability marker", input: "NOT NULL", wantMessage: "expected a type name before nullability marker"},
		{name: "bare null", input: "NULL", wantMessage: "expected a type name before nullability marker"},
		{name: "not without null", input: "INT NOT", wantMessage: "expected NULL after NOT"},
		{name: "unclosed parameter list", input: "VARCHAR(255", wantMessage: "expected ')' closing parameter list of VARCHAR"},
		{name: "trailing input", input: "ARRAY<INT> garbage()", wantMessage: "unexpected trailing input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := typeparser.Parse(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMessage)
		})
	}
}

func TestUnterminatedTokens(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantToken string
	}{
		{name: "backtick name", input: "ROW<`id INT>", wantToken: "backtick-quoted field name"},
		{name: "comment", input: "ROW<`id` INT 'no end", wantToken: "comment"},
		{name: "comment ending on escape", input: "ROW<`id` INT 'trailing''", wantToken: "comment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := typeparser.Parse(tt.input)
			var untErr *typeparser.UnterminatedError
			require.ErrorAs(t, err, &untErr)
			assert.Equal(t, tt.wantToken, untErr.Token)
		})
	}
}

func TestInvalidFieldNames(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "leading digit", input: "ROW<1st INT>"},
		{name: "punctuation", input: "ROW<#x INT>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := typeparser.Parse(tt.input)
			var fieldErr *typeparser.FieldNameError
			require.ErrorAs(t, err, &fieldErr)
		})
	}
}

// Word-boundary discipline: NOT and NULL only match whole words, so
// identifiers that merely start with them parse as type or field names.
func TestKeywordWordBoundaries(t *testing.T) {
	node, err := typeparser.Parse("NOTHING")
	require.NoError(t, err)
	assert.Equal(t, "NOTHING", node.TypeName())
	assert.True(t, node.Nullable())

	node, err = typeparser.Parse("NULLTYPE")
	require.NoError(t, err)
	assert.Equal(t, "NULLTYPE", node.TypeName())

	node, err = typeparser.Parse("ROW<nota INT, nullable_flag BOOLEAN>")
	require.NoError(t, err)
	row := node.(*typetree.Row)
	require.Len(t, row.Fields, 2)
	assert.Equal(t, "nota", row.Fields[0].Name)
	assert.Equal(t, "nullable_flag", row.Fields[1].Name)
}

func TestCaseInsensitiveKeywords(t *testing.T) {
	node, err := typeparser.Parse("array<row<`x` int not null>> not null")
	require.NoError(t, err)

	arr, ok := node.(*typetree.Array)
	require.True(t, ok)
	assert.False(t, arr.Nullable())

	row, ok := arr.Elem.(*typetree.Row)
	require.True(t, ok)
	require.Len(t, row.Fields, 1)
	assert.Equal(t, "INT", row.Fields[0].Type.TypeName())
	assert.False(t, row.Fields[0].Type.Nullable())
}
