package capability

import (
	"reflect"

	"github.com/iocap/iocap"
)

// Canonical model types satisfying the contracts. Probes use them as the
// hypothetical arguments when a candidate method declares an interface
// parameter: the parameter qualifies when the model implements it. Their
// methods exist for their shape only and are never invoked.

type modelConstIterator struct{}

func (modelConstIterator) Next() modelConstIterator  { return modelConstIterator{} }
func (modelConstIterator) Buffer() iocap.ConstBuffer { return iocap.ConstBuffer{} }

type modelConstSequence struct{}

func (modelConstSequence) Begin() modelConstIterator { return modelConstIterator{} }
func (modelConstSequence) End() modelConstIterator   { return modelConstIterator{} }

type modelMutableIterator struct{}

func (modelMutableIterator) Next() modelMutableIterator  { return modelMutableIterator{} }
func (modelMutableIterator) Buffer() iocap.MutableBuffer { return iocap.MutableBuffer{} }

type modelMutableSequence struct{}

func (modelMutableSequence) Begin() modelMutableIterator { return modelMutableIterator{} }
func (modelMutableSequence) End() modelMutableIterator   { return modelMutableIterator{} }

type modelHandler func(error, iocap.ByteCount)

var (
	modelConstSequenceType   = reflect.TypeFor[modelConstSequence]()
	modelMutableSequenceType = reflect.TypeFor[modelMutableSequence]()
	modelHandlerType         = reflect.TypeFor[modelHandler]()
)
