package swiss

// Points returns the (white, black) fixed-point score pair a result
// token credits. It fails with ErrInvalidResultToken on anything
// outside the closed {1-0, 0-1, 0.5-0.5} set.
func Points(token ResultToken) (white, black Points1000, err error) {
	switch token {
	case ResultWhiteWin:
		return 1000, 0, nil
	case ResultBlackWin:
		return 0, 1000, nil
	case ResultDraw:
		return 500, 500, nil
	default:
		return 0, 0, newErr(ErrInvalidResultToken, "unrecognized result token %q", token)
	}
}
