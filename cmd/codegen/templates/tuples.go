package templates

import (
	"io"
	"strconv"

	qt "github.com/valyala/quicktemplate"
)

const tuplesHeader = `// Code generated by cmd/codegen. DO NOT EDIT.

package property

import (
	"github.com/delaneyj/frp/clock"
	"github.com/delaneyj/frp/observable"
)
`

// StreamTuples writes TupleN, SequenceTN and CombineN for every arity from 2
// to maxArity.
func StreamTuples(qw *qt.Writer, maxArity int) {
	qw.N().S(tuplesHeader)
	for n := 2; n <= maxArity; n++ {
		streamTuple(qw, n)
		streamSequenceT(qw, n)
		streamCombine(qw, n)
	}
}

func WriteTuples(w io.Writer, maxArity int) {
	qw := qt.AcquireWriter(w)
	StreamTuples(qw, maxArity)
	qt.ReleaseWriter(qw)
}

// TuplesGen renders the whole generated file.
func TuplesGen(maxArity int) string {
	bb := qt.AcquireByteBuffer()
	WriteTuples(bb, maxArity)
	s := string(bb.B)
	qt.ReleaseByteBuffer(bb)
	return s
}

func tupleType(n int) string {
	return "Tuple" + strconv.Itoa(n) + "[" + prefixedStrings("T", n) + "]"
}

func streamTuple(qw *qt.Writer, n int) {
	w := qw.N()
	w.S("\ntype Tuple")
	w.D(n)
	w.S("[")
	w.S(prefixedStrings("T", n))
	w.S(" any] struct {\n")
	for i := 0; i < n; i++ {
		w.S("\tV")
		w.D(i)
		w.S(" T")
		w.D(i)
		w.S("\n")
	}
	w.S("}\n")
}

func streamSequenceT(qw *qt.Writer, n int) {
	w := qw.N()
	tt := tupleType(n)

	w.S("\n// SequenceT")
	w.D(n)
	w.S(" reads every member fresh on each Get. A notification from any member\n")
	w.S("// re-signals the tuple.\n")
	w.S("func SequenceT")
	w.D(n)
	w.S("[")
	w.S(prefixedStrings("T", n))
	w.S(" any](\n")
	streamParams(qw, n)
	w.S(") Property[")
	w.S(tt)
	w.S("] {\n")
	w.S("\treturn New(\n")
	w.S("\t\tfunc() ")
	w.S(tt)
	w.S(" {\n")
	w.S("\t\t\treturn ")
	w.S(tt)
	w.S("{\n")
	for i := 0; i < n; i++ {
		w.S("\t\t\t\tV")
		w.D(i)
		w.S(": p")
		w.D(i)
		w.S(".Get(),\n")
	}
	w.S("\t\t\t}\n")
	w.S("\t\t},\n")
	w.S("\t\tobservable.SubscribeFunc[clock.Time](func(observer observable.Observer[clock.Time]) observable.Subscription {\n")
	w.S("\t\t\treturn subscribeAll(observer, ")
	w.S(prefixedStrings("p", n))
	w.S(")\n")
	w.S("\t\t}),\n")
	w.S("\t)\n")
	w.S("}\n")
}

func streamCombine(qw *qt.Writer, n int) {
	w := qw.N()
	tt := tupleType(n)

	w.S("\n// Combine")
	w.D(n)
	w.S(" is Map over SequenceT")
	w.D(n)
	w.S(".\n")
	w.S("func Combine")
	w.D(n)
	w.S("[")
	w.S(prefixedStrings("T", n))
	w.S(", O any](\n")
	streamParams(qw, n)
	w.S("\tproject func(")
	w.S(prefixedStrings("T", n))
	w.S(") O,\n")
	w.S(") Property[O] {\n")
	w.S("\treturn Map(SequenceT")
	w.D(n)
	w.S("(")
	w.S(prefixedStrings("p", n))
	w.S("), func(t ")
	w.S(tt)
	w.S(") O {\n")
	w.S("\t\treturn project(\n")
	for i := 0; i < n; i++ {
		w.S("\t\t\tt.V")
		w.D(i)
		w.S(",\n")
	}
	w.S("\t\t)\n")
	w.S("\t})\n")
	w.S("}\n")
}

func streamParams(qw *qt.Writer, n int) {
	w := qw.N()
	for i := 0; i < n; i++ {
		w.S("\tp")
		w.D(i)
		w.S(" Property[T")
		w.D(i)
		w.S("],\n")
	}
}
