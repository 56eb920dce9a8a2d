package textcompose

import (
	"github.com/riverfjs/textcompose/internal/buffer"
	"github.com/riverfjs/textcompose/internal/render"
)

// RenderHTML 将节点渲染为 HTML 片段（<em>、<strong>、<br />）
func RenderHTML(nodes []Node) string {
	return render.HTML(nodes)
}

// RenderSegments renders Builder output as spans classed by style.
func RenderSegments(segments []Segment) string {
	return render.Segments(segments)
}

// RenderEntities 将节点渲染为 (plain_text, entities)
//
// 实体偏移量和长度以 UTF-16 code units 计算；***x*** 同时产生 bold 和 italic 实体。
func RenderEntities(nodes []Node) (string, []MessageEntity) {
	return render.Entities(nodes)
}

// RenderText renders nodes to plain text; line breaks become "\n".
func RenderText(nodes []Node) string {
	return render.Text(nodes)
}

// UTF16Len returns the length of text measured in UTF-16 code units.
func UTF16Len(text string) int {
	return buffer.UTF16Len(text)
}
