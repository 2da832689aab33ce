package parser

// The grammar below is layered by precedence, loosest first:
// OR, AND, NOT, predicates, additive, multiplicative, unary sign, postfix
// (subscript, dereference, AT TIME ZONE) and finally primaries.
type (
	script struct {
		Items []*scriptItem `parser:"(@@? ';')* @@?"`
	}

	scriptItem struct {
		Query      *query      `parser:"@@"`
		Expression *expression `parser:"| @@"`
	}

	query struct {
		Distinct bool               `parser:"'SELECT' @'DISTINCT'?"`
		Items    []*selectItem      `parser:"@@ (',' @@)*"`
		From     *tableRef          `parser:"('FROM' @@)?"`
		Where    *expression        `parser:"('WHERE' @@)?"`
		GroupBy  []*groupingElement `parser:"('GROUP' 'BY' @@ (',' @@)*)?"`
		Having   *expression        `parser:"('HAVING' @@)?"`
		OrderBy  []*sortItem        `parser:"('ORDER' 'BY' @@ (',' @@)*)?"`
		Limit    *string            `parser:"('LIMIT' @Int)?"`
	}

	selectItem struct {
		All    *allColumns   `parser:"@@"`
		Column *singleColumn `parser:"| @@"`
	}

	allColumns struct {
		Prefix []*identTok `parser:"(@@ '.')*"`
		Star   bool        `parser:"@'*'"`
	}

	singleColumn struct {
		Expression *expression `parser:"@@"`
		Alias      *identTok   `parser:"('AS'? @@)?"`
	}

	tableRef struct {
		Name  *qualifiedName `parser:"@@"`
		Alias *identTok      `parser:"('AS'? @@)?"`
	}

	groupingElement struct {
		Sets   []*nameList   `parser:"  'GROUPING' 'SETS' '(' @@ (',' @@)* ')'"`
		Cube   *nameList     `parser:"| 'CUBE' @@"`
		Rollup *nameList     `parser:"| 'ROLLUP' @@"`
		Single *expression   `parser:"| @@"`
		Multi  []*expression `parser:"| '(' (@@ (',' @@)*)? ')'"`
	}

	nameList struct {
		Names []*qualifiedName `parser:"'(' (@@ (',' @@)*)? ')'"`
	}

	sortItem struct {
		Key      *expression `parser:"@@"`
		Ordering *string     `parser:"@('ASC' | 'DESC')?"`
		Nulls    *string     `parser:"('NULLS' @('FIRST' | 'LAST'))?"`
	}

	expression struct {
		Or *orExpr `parser:"@@"`
	}

	orExpr struct {
		Left  *andExpr   `parser:"@@"`
		Right []*andExpr `parser:"('OR' @@)*"`
	}

	andExpr struct {
		Left  *notExpr   `parser:"@@"`
		Right []*notExpr `parser:"('AND' @@)*"`
	}

	notExpr struct {
		Not       *notExpr   `parser:"  'NOT' @@"`
		Predicate *predicate `parser:"| @@"`
	}

	predicate struct {
		Value *valueExpr     `parser:"@@"`
		Tail  *predicateTail `parser:"@@?"`
	}

	predicateTail struct {
		Quantified *quantifiedTail `parser:"  @@"`
		Comparison *comparisonTail `parser:"| @@"`
		IsNull     *isNullTail     `parser:"| @@"`
		Between    *betweenTail    `parser:"| @@"`
		In         *inTail         `parser:"| @@"`
		Like       *likeTail       `parser:"| @@"`
	}

	quantifiedTail struct {
		Operator   string `parser:"@('=' | '<>' | '!=' | '<=' | '>=' | '<' | '>')"`
		Quantifier string `parser:"@('ALL' | 'ANY' | 'SOME')"`
		Subquery   *query `parser:"'(' @@ ')'"`
	}

	comparisonTail struct {
		Distinct bool       `parser:"( @('IS' 'DISTINCT' 'FROM')"`
		Operator string     `parser:"| @('=' | '<>' | '!=' | '<=' | '>=' | '<' | '>') )"`
		Right    *valueExpr `parser:"@@"`
	}

	isNullTail struct {
		Not bool `parser:"'IS' @'NOT'? 'NULL'"`
	}

	betweenTail struct {
		Not bool       `parser:"@'NOT'? 'BETWEEN'"`
		Min *valueExpr `parser:"@@"`
		Max *valueExpr `parser:"'AND' @@"`
	}

	inTail struct {
		Not      bool          `parser:"@'NOT'? 'IN'"`
		Subquery *query        `parser:"( '(' @@ ')'"`
		Values   []*expression `parser:"| '(' @@ (',' @@)* ')' )"`
	}

	likeTail struct {
		Not     bool       `parser:"@'NOT'? 'LIKE'"`
		Pattern *valueExpr `parser:"@@"`
		Escape  *valueExpr `parser:"('ESCAPE' @@)?"`
	}

	valueExpr struct {
		Left *term      `parser:"@@"`
		Rest []*addTail `parser:"@@*"`
	}

	addTail struct {
		Operator string `parser:"@('+' | '-')"`
		Right    *term  `parser:"@@"`
	}

	term struct {
		Left *unaryExpr `parser:"@@"`
		Rest []*mulTail `parser:"@@*"`
	}

	mulTail struct {
		Operator string     `parser:"@('*' | '/' | '%')"`
		Right    *unaryExpr `parser:"@@"`
	}

	unaryExpr struct {
		Sign    string       `parser:"( @('-' | '+')"`
		Operand *unaryExpr   `parser:"  @@ )"`
		Value   *postfixExpr `parser:"| @@"`
	}

	postfixExpr struct {
		Primary  *primary  `parser:"@@"`
		Suffixes []*suffix `parser:"@@*"`
	}

	suffix struct {
		Index    *expression `parser:"  '[' @@ ']'"`
		Field    *identTok   `parser:"| '.' @@"`
		TimeZone *primary    `parser:"| 'AT' 'TIME' 'ZONE' @@"`
	}

	primary struct {
		Lambda    *lambdaExpr   `parser:"  @@"`
		Subquery  *query        `parser:"| '(' @@ ')'"`
		Paren     *expression   `parser:"| '(' @@ ')'"`
		Case      *caseExpr     `parser:"| @@"`
		Cast      *castExpr     `parser:"| @@"`
		Extract   *extractExpr  `parser:"| @@"`
		Exists    *query        `parser:"| 'EXISTS' '(' @@ ')'"`
		Coalesce  []*expression `parser:"| 'COALESCE' '(' @@ (',' @@)* ')'"`
		NullIf    *nullIfExpr   `parser:"| @@"`
		If        *ifExpr       `parser:"| @@"`
		Try       *expression   `parser:"| 'TRY' '(' @@ ')'"`
		Row       []*expression `parser:"| 'ROW' '(' @@ (',' @@)* ')'"`
		Array     *arrayExpr    `parser:"| @@"`
		Grouping  []*expression `parser:"| 'GROUPING' '(' (@@ (',' @@)*)? ')'"`
		Interval  *intervalExpr `parser:"| @@"`
		Char      *stringTok    `parser:"| 'CHAR' @@"`
		Decimal   *string       `parser:"| 'DECIMAL' @String"`
		Time      *string       `parser:"| 'TIME' @String"`
		Timestamp *string       `parser:"| 'TIMESTAMP' @String"`
		Binary    *string       `parser:"| @Binary"`
		String    *stringTok    `parser:"| @@"`
		Float     *string       `parser:"| @Float"`
		Int       *string       `parser:"| @Int"`
		Boolean   *string       `parser:"| @('TRUE' | 'FALSE')"`
		Null      bool          `parser:"| @'NULL'"`
		Parameter bool          `parser:"| @'?'"`
		Typed     *typedLiteral `parser:"| @@"`
		Function  *functionCall `parser:"| @@"`
		Ident     *identTok     `parser:"| @@"`
	}

	identTok struct {
		Value string `parser:"@(Ident | QuotedIdent)"`
	}

	qualifiedName struct {
		Parts []*identTok `parser:"@@ ('.' @@)*"`
	}

	stringTok struct {
		Unicode *string `parser:"  @UnicodeString"`
		Plain   *string `parser:"| @String"`
	}

	typedLiteral struct {
		Type  string     `parser:"@Ident"`
		Value *stringTok `parser:"@@"`
	}

	intervalExpr struct {
		Sign  *string `parser:"'INTERVAL' @('-' | '+')?"`
		Value string  `parser:"@String"`
		Start string  `parser:"@Ident"`
		End   *string `parser:"('TO' @Ident)?"`
	}

	lambdaExpr struct {
		Arguments []*identTok `parser:"'(' (@@ (',' @@)*)? ')' '->'"`
		Body      *expression `parser:"@@"`
	}

	caseExpr struct {
		Operand *expression   `parser:"'CASE' @@?"`
		Whens   []*whenClause `parser:"@@+"`
		Default *expression   `parser:"('ELSE' @@)?"`
		End     string        `parser:"'END'"`
	}

	whenClause struct {
		Operand *expression `parser:"'WHEN' @@"`
		Result  *expression `parser:"'THEN' @@"`
	}

	castExpr struct {
		Function   string      `parser:"@('CAST' | 'TRY_CAST') '('"`
		Expression *expression `parser:"@@ 'AS'"`
		Type       *typeName   `parser:"@@ ')'"`
	}

	typeName struct {
		Name   string       `parser:"@(Ident | 'DECIMAL' | 'TIMESTAMP' | 'TIME' | 'CHAR' | 'ARRAY' | 'ROW')"`
		Params []*typeParam `parser:"('(' @@ (',' @@)* ')')?"`
	}

	typeParam struct {
		Size *string   `parser:"  @Int"`
		Type *typeName `parser:"| @@"`
	}

	extractExpr struct {
		Field      string      `parser:"'EXTRACT' '(' @Ident 'FROM'"`
		Expression *expression `parser:"@@ ')'"`
	}

	nullIfExpr struct {
		First  *expression `parser:"'NULLIF' '(' @@"`
		Second *expression `parser:"',' @@ ')'"`
	}

	ifExpr struct {
		Condition *expression `parser:"'IF' '(' @@"`
		True      *expression `parser:"',' @@"`
		False     *expression `parser:"(',' @@)? ')'"`
	}

	arrayExpr struct {
		Values []*expression `parser:"'ARRAY' '[' (@@ (',' @@)*)? ']'"`
	}

	functionCall struct {
		Name      *qualifiedName `parser:"@@ '('"`
		Star      bool           `parser:"( @'*'"`
		Distinct  bool           `parser:"| @'DISTINCT'?"`
		Arguments []*expression  `parser:"  @@ (',' @@)* )? ')'"`
		Filter    *expression    `parser:"('FILTER' '(' 'WHERE' @@ ')')?"`
		Over      *window        `parser:"('OVER' @@)?"`
	}

	window struct {
		PartitionBy []*expression `parser:"'(' ('PARTITION' 'BY' @@ (',' @@)*)?"`
		OrderBy     []*sortItem   `parser:"('ORDER' 'BY' @@ (',' @@)*)?"`
		Frame       *windowFrame  `parser:"@@? ')'"`
	}

	windowFrame struct {
		Type  string      `parser:"@('RANGE' | 'ROWS')"`
		Start *frameBound `parser:"( 'BETWEEN' @@"`
		End   *frameBound `parser:"  'AND' @@"`
		Only  *frameBound `parser:"| @@ )"`
	}

	frameBound struct {
		Unbounded *string    `parser:"  'UNBOUNDED' @('PRECEDING' | 'FOLLOWING')"`
		Current   bool       `parser:"| @('CURRENT' 'ROW')"`
		Value     *valueExpr `parser:"| @@"`
		Direction string     `parser:"  @('PRECEDING' | 'FOLLOWING')"`
	}
)
