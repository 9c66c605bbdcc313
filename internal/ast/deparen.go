package ast

// UnwrapOnce removes one transparent wrapper (paren, label, annotation).
// It returns the wrapped expression and true, or (id, false) when id is not
// a transparent node.
func (e *Exprs) UnwrapOnce(id ExprID) (ExprID, bool) {
	expr := e.Get(id)
	if expr == nil {
		return id, false
	}
	switch expr.Kind {
	case ExprParen:
		data := e.Parens.Get(uint32(expr.Payload))
		return data.Inner, true
	case ExprLabeled:
		data := e.Labeleds.Get(uint32(expr.Payload))
		return data.Inner, true
	case ExprAnnotated:
		data := e.Annotateds.Get(uint32(expr.Payload))
		return data.Inner, true
	}
	return id, false
}

// LastMeaningful descends to the innermost expression that actually carries
// the value of id: transparent wrappers are skipped, blocks contribute their
// last statement and qualified accesses their selector. NoExprID means there
// is nothing usable (e.g. an empty block).
func (e *Exprs) LastMeaningful(id ExprID) ExprID {
	for id.IsValid() {
		if inner, ok := e.UnwrapOnce(id); ok {
			id = inner
			continue
		}
		expr := e.Get(id)
		if expr == nil {
			return NoExprID
		}
		switch expr.Kind {
		case ExprBlock:
			data := e.Blocks.Get(uint32(expr.Payload))
			if len(data.Stmts) == 0 {
				return NoExprID
			}
			id = data.Stmts[len(data.Stmts)-1]
		case ExprQualified:
			data := e.Qualifieds.Get(uint32(expr.Payload))
			id = data.Selector
		default:
			return id
		}
	}
	return NoExprID
}

// DeparenthesizeChain collects the non-transparent expressions visited on the
// way from id down to its last meaningful sub-expression, in root-to-leaf
// order. The leaf itself is included. A nil result means the chain bottoms
// out in nothing usable.
func (e *Exprs) DeparenthesizeChain(id ExprID) []ExprID {
	var chain []ExprID
	for id.IsValid() {
		if inner, ok := e.UnwrapOnce(id); ok {
			id = inner
			continue
		}
		expr := e.Get(id)
		if expr == nil {
			return nil
		}
		chain = append(chain, id)
		switch expr.Kind {
		case ExprBlock:
			data := e.Blocks.Get(uint32(expr.Payload))
			if len(data.Stmts) == 0 {
				return nil
			}
			id = data.Stmts[len(data.Stmts)-1]
		case ExprQualified:
			data := e.Qualifieds.Get(uint32(expr.Payload))
			id = data.Selector
		default:
			return chain
		}
	}
	return nil
}
