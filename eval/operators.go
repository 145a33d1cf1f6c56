package eval

import (
	"math/big"

	"cara/parser"
	"cara/types"
)

// Operator implementations over arbitrary-precision integers
// Division and modulo truncate toward zero; shift counts must fit the host
// shift-width type or fail with E_RANGE rather than truncating silently

var (
	intZero = big.NewInt(0)
	intOne  = big.NewInt(1)
)

// applyBinaryOp dispatches a binary operator over two integers
func applyBinaryOp(op parser.TokenType, left, right *big.Int) types.Result {
	switch op {
	case parser.TOKEN_PLUS:
		return okInt(new(big.Int).Add(left, right))
	case parser.TOKEN_MINUS:
		return okInt(new(big.Int).Sub(left, right))
	case parser.TOKEN_STAR:
		return okInt(new(big.Int).Mul(left, right))
	case parser.TOKEN_SLASH:
		if right.Sign() == 0 {
			return types.Err(types.E_DIVZERO)
		}
		return okInt(new(big.Int).Quo(left, right))
	case parser.TOKEN_PERCENT:
		if right.Sign() == 0 {
			return types.Err(types.E_MODZERO)
		}
		return okInt(new(big.Int).Rem(left, right))

	case parser.TOKEN_EQ:
		return okBool(left.Cmp(right) == 0)
	case parser.TOKEN_NE:
		return okBool(left.Cmp(right) != 0)
	case parser.TOKEN_LT:
		return okBool(left.Cmp(right) < 0)
	case parser.TOKEN_LE:
		return okBool(left.Cmp(right) <= 0)
	case parser.TOKEN_GT:
		return okBool(left.Cmp(right) > 0)
	case parser.TOKEN_GE:
		return okBool(left.Cmp(right) >= 0)

	case parser.TOKEN_OR:
		return okBool(left.Sign() > 0 || right.Sign() > 0)
	case parser.TOKEN_AND:
		return okBool(left.Sign() > 0 && right.Sign() > 0)

	case parser.TOKEN_LSHIFT:
		shift, ok := shiftCount(right)
		if !ok {
			return types.Err(types.E_RANGE)
		}
		return okInt(new(big.Int).Lsh(left, shift))
	case parser.TOKEN_RSHIFT:
		shift, ok := shiftCount(right)
		if !ok {
			return types.Err(types.E_RANGE)
		}
		return okInt(new(big.Int).Rsh(left, shift))

	default:
		// Unreachable with a well-formed AST
		return types.Err(types.E_OPERATOR)
	}
}

// shiftCount converts a shift amount to uint, rejecting negative or
// oversized values
func shiftCount(n *big.Int) (uint, bool) {
	if n.Sign() < 0 || !n.IsUint64() {
		return 0, false
	}
	v := n.Uint64()
	if v > uint64(^uint(0)) {
		return 0, false
	}
	return uint(v), true
}

// negInt returns -n in a fresh integer
func negInt(n *big.Int) *big.Int {
	return new(big.Int).Neg(n)
}

func okInt(n *big.Int) types.Result {
	return types.Ok(types.NewBigInt(n))
}

// okBool renders a comparison/logical outcome as integer 0 or 1
func okBool(b bool) types.Result {
	if b {
		return okInt(intOne)
	}
	return okInt(intZero)
}
