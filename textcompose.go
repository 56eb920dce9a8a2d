// Package textcompose 将带占位符和强调标记的文案模板转换为结构化节点
//
// 这个包为编辑类数据可视化（图表、地图、图例）中的本地化、动态拼接的文案提供
// 与渲染层无关的文本处理。
//
// 核心功能：
//   - Replace(): 解析 *italic*、**bold**、***bold-italic***、|| 换行和 {{key}} 占位符
//   - Builder: 流式拼接 (text, style) 片段，自动插入空格并格式化数字
//   - ByRange() / Plural() / T(): 文案选择与规范化辅助函数
//   - Catalog: 基于 go-i18n 的本地化模板目录
//   - RenderHTML() / RenderEntities(): 将节点折叠为 HTML 或纯文本 + 实体
//
// 示例：
//
//	nodes := textcompose.Replace("**{{city}}** hat {{n}} Einwohner", textcompose.Replacements{
//	    "city": textcompose.StringValue("Bern"),
//	    "n":    textcompose.StringValue("134 794"),
//	})
//	for _, node := range nodes {
//	    switch n := node.(type) {
//	    case textcompose.TextRun:
//	        // 文本
//	    case textcompose.LineBreak:
//	        // 换行
//	    case textcompose.EmphasisGroup:
//	        // 强调，n.Children 为子节点
//	    case textcompose.Injected:
//	        // 非字符串替换值，原样嵌入
//	    }
//	}
package textcompose

import (
	"github.com/riverfjs/textcompose/internal/replacer"
)

// Replace 解析模板并替换占位符，返回有序节点列表
//
// 参数：
//   - template: 模板文本
//   - values: 替换表，StringValue 会被递归解析，OpaqueValue 原样注入
//   - opts: 定界符、递归深度等选项
//
// 返回：
//   - []Node: TextRun、LineBreak、EmphasisGroup 或 Injected
//
// Replace 从不失败：未知 key 与未闭合的标记都按字面文本输出。
// 可以被多个 goroutine 并发调用。
func Replace(template string, values Replacements, opts ...Option) []Node {
	options := applyOptions(opts...)
	return replacer.Replace(template, values,
		replacer.WithDelimiters(options.Config.Delimiters.Open, options.Config.Delimiters.Close),
		replacer.WithMaxDepth(options.Config.MaxDepth),
		replacer.WithLogger(Logger),
	)
}

// ReplaceMap is Replace with a loosely typed table: string values are parsed,
// anything else is injected.
func ReplaceMap(template string, values map[string]any, opts ...Option) []Node {
	return Replace(template, FromMap(values), opts...)
}

// SplitFormat exposes the emphasis splitting pass on its own.
func SplitFormat(text string) []Chunk {
	return replacer.SplitFormat(text)
}
