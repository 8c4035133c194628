package expr

import "math"

// EvalF64 for VarNode returns x.
func (v *VarNode) EvalF64(x float64) (float64, bool) {
	return x, true
}

// EvalF64 for ConstNode returns the constant value.
func (c *ConstNode) EvalF64(x float64) (float64, bool) {
	return c.Val, true
}

// EvalF64 for OpNode evaluates the arguments and dispatches on op. It
// reports false when any step leaves the real numbers or overflows.
func (o *OpNode) EvalF64(x float64) (float64, bool) {
	if len(o.Args) != o.Op.Arity() {
		return 0, false
	}
	a, ok := o.Args[0].EvalF64(x)
	if !ok {
		return 0, false
	}
	if o.Op.Arity() == 1 {
		return evalUnary(o.Op, a)
	}
	b, ok := o.Args[1].EvalF64(x)
	if !ok {
		return 0, false
	}
	return evalBinary(o.Op, a, b)
}

func evalUnary(op Op, a float64) (float64, bool) {
	if math.IsNaN(a) {
		return 0, false
	}
	switch op {
	case OpNeg:
		return -a, true
	case OpAbs:
		return math.Abs(a), true
	case OpSin:
		if math.IsInf(a, 0) {
			return 0, false
		}
		return math.Sin(a), true
	case OpCos:
		if math.IsInf(a, 0) {
			return 0, false
		}
		return math.Cos(a), true
	case OpLn:
		if a <= 0 || math.IsInf(a, 0) {
			return 0, false
		}
		return math.Log(a), true
	case OpSqrt:
		if a < 0 {
			return 0, false
		}
		return math.Sqrt(a), true
	case OpFloor:
		return math.Floor(a), true
	case OpCeil:
		return math.Ceil(a), true
	}
	return 0, false
}

func evalBinary(op Op, a, b float64) (float64, bool) {
	var r float64
	switch op {
	case OpAdd:
		r = a + b
	case OpSub:
		r = a - b
	case OpMul:
		r = a * b
	case OpDiv:
		if b == 0 {
			return 0, false
		}
		r = a / b
	case OpPow:
		// Avoid huge exponents
		if math.Abs(b) > 1000 {
			return 0, false
		}
		r = math.Pow(a, b)
	default:
		return 0, false
	}
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return 0, false
	}
	return r, true
}
