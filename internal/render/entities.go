package render

import (
	"fmt"

	"github.com/riverfjs/textcompose/internal/buffer"
	"github.com/riverfjs/textcompose/internal/types"
)

// Entity types emitted for emphasis.
const (
	EntityBold   = "bold"
	EntityItalic = "italic"
)

var emphasisEntities = map[types.Emphasis][]string{
	types.Italic:     {EntityItalic},
	types.Bold:       {EntityBold},
	types.BoldItalic: {EntityBold, EntityItalic},
}

type entityScope struct {
	entityType  string
	startOffset int
}

// EntityWalker 遍历节点并生成 (text, entities)
type EntityWalker struct {
	buf         *buffer.TextBuffer
	entityStack []entityScope
	entities    []types.MessageEntity
}

// NewEntityWalker creates an empty walker.
func NewEntityWalker() *EntityWalker {
	return &EntityWalker{
		buf:         buffer.New(),
		entityStack: make([]entityScope, 0),
		entities:    make([]types.MessageEntity, 0),
	}
}

// Entities renders nodes to plain text plus emphasis entities with UTF-16
// offsets. Line breaks become "\n". Entities are listed in closing order, so
// an inner entity precedes the one enclosing it.
func Entities(nodes []types.Node) (string, []types.MessageEntity) {
	w := NewEntityWalker()
	w.Walk(nodes)
	return w.Result()
}

// Text renders nodes to plain text.
func Text(nodes []types.Node) string {
	text, _ := Entities(nodes)
	return text
}

// Walk appends nodes to the walker's output.
func (w *EntityWalker) Walk(nodes []types.Node) {
	for _, node := range nodes {
		switch n := node.(type) {
		case types.TextRun:
			w.buf.Write(n.Text)
		case types.LineBreak:
			w.buf.Write("\n")
		case types.EmphasisGroup:
			kinds := emphasisEntities[n.Kind]
			for _, k := range kinds {
				w.pushEntity(k)
			}
			w.Walk(n.Children)
			for i := len(kinds) - 1; i >= 0; i-- {
				w.popEntity()
			}
		case types.Injected:
			w.walkInjected(n.Value)
		}
	}
}

// Result returns the accumulated text and entities.
func (w *EntityWalker) Result() (string, []types.MessageEntity) {
	return w.buf.String(), w.entities
}

func (w *EntityWalker) walkInjected(value any) {
	switch v := value.(type) {
	case nil:
	case []types.Node:
		w.Walk(v)
	case types.Node:
		w.Walk([]types.Node{v})
	case []types.Segment:
		for _, seg := range v {
			w.buf.Write(seg.Text)
		}
	default:
		w.buf.Write(fmt.Sprint(v))
	}
}

func (w *EntityWalker) pushEntity(entityType string) {
	w.entityStack = append(w.entityStack, entityScope{
		entityType:  entityType,
		startOffset: w.buf.UTF16Offset(),
	})
}

func (w *EntityWalker) popEntity() {
	if len(w.entityStack) == 0 {
		return
	}
	scope := w.entityStack[len(w.entityStack)-1]
	w.entityStack = w.entityStack[:len(w.entityStack)-1]

	length := w.buf.UTF16Offset() - scope.startOffset
	if length > 0 {
		w.entities = append(w.entities, types.MessageEntity{
			Type:   scope.entityType,
			Offset: scope.startOffset,
			Length: length,
		})
	}
}
