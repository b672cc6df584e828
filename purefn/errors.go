package purefn

import "errors"

var ErrNilFunc = errors.New("purefn: cannot wrap a nil function")

func mustFunc(isNil bool) {
	if isNil {
		panic(ErrNilFunc)
	}
}
