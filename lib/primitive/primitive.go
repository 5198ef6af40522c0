package primitive

type Value int32

type NodeId int

const NilNode = NodeId(-1)

func (id NodeId) IsNil() bool {
	return id == NilNode
}
