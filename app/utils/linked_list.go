package utils

type Node[T any] struct {
	Data T
	Prev *Node[T]
	Next *Node[T]
}

// LinkedList is a doubly linked list that grows in O(1) at both ends.
type LinkedList[T any] struct {
	head   *Node[T]
	tail   *Node[T]
	length int
}

func (l LinkedList[T]) Len() int {
	return l.length
}

func (l LinkedList[T]) Head() *Node[T] {
	return l.head
}

func (l LinkedList[T]) Tail() *Node[T] {
	return l.tail
}

func (l *LinkedList[T]) incLength() {
	l.length++
}

func (l *LinkedList[T]) PushBack(data T) (*LinkedList[T], int) {
	defer l.incLength()
	if l.head == nil {
		l.head = &Node[T]{Data: data}
		l.tail = l.head

		return l, l.Len() + 1
	}

	l.tail.Next = &Node[T]{Data: data, Prev: l.tail}
	l.tail = l.tail.Next

	return l, l.Len() + 1
}

func (l *LinkedList[T]) PushFront(data T) (*LinkedList[T], int) {
	defer l.incLength()
	if l.head == nil {
		l.head = &Node[T]{Data: data}
		l.tail = l.head

		return l, l.Len() + 1
	}

	l.head.Prev = &Node[T]{Data: data, Next: l.head}
	l.head = l.head.Prev

	return l, l.Len() + 1
}

func (l LinkedList[T]) Slice() []T {
	slice := make([]T, 0, l.Len())

	for node := l.head; node != nil; node = node.Next {
		slice = append(slice, node.Data)
	}

	return slice
}

func NewLinkedList[T any]() *LinkedList[T] {
	return new(LinkedList[T])
}
