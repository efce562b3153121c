package catalog

import "github.com/mapleridge/opsig/internal/model"

// DefaultEntries returns the built-in head-and-neck operation catalog that
// ships with opsig, used when no reference file is configured. Identifiers
// follow the billing reference table.
func DefaultEntries() []model.Operation {
	return []model.Operation{
		{ID: 1, Name: "游离皮瓣修复术"},
		{ID: 2, Name: "上颌骨全切术"},
		{ID: 3, Name: "游离前臂皮瓣修复术"},
		{ID: 4, Name: "游离股前外侧皮瓣修复术"},
		{ID: 5, Name: "舌部分切除术"},
		{ID: 6, Name: "颈淋巴结清扫术"},
		{ID: 7, Name: "气管切开术"},
		{ID: 8, Name: "下颌骨节段切除术"},
		{ID: 9, Name: "上颌骨缺损肌骨皮瓣修复术"},
		{ID: 10, Name: "下颌骨缺损肌骨皮瓣修复术"},
		{ID: 11, Name: "腮腺浅叶切除术"},
		{ID: 12, Name: "全喉切除术"},
		{ID: 13, Name: "半喉切除术"},
		{ID: 14, Name: "甲状腺腺叶切除术"},
		{ID: 15, Name: "口底癌扩大切除术"},
		{ID: 16, Name: "颊部肿物切除术"},
		{ID: 17, Name: "上颌骨部分切除术"},
		{ID: 18, Name: "上颌骨半切术"},
		{ID: 19, Name: "下颌骨方块切除术"},
		{ID: 20, Name: "舌骨上颈淋巴结清扫术"},
		{ID: 21, Name: "功能性颈淋巴结清扫术"},
		{ID: 22, Name: "根治性颈淋巴结清扫术"},
		{ID: 23, Name: "胸大肌皮瓣修复术"},
		{ID: 24, Name: "带蒂皮瓣修复术"},
		{ID: 132, Name: "上颌骨缺损钛网肌骨皮瓣修复术"},
		{ID: 133, Name: "下颌骨缺损钛板肌骨皮瓣修复术"},
	}
}

// DefaultRules returns the built-in multi-ID rules. 游离皮瓣修复术 always
// expands to its three free-flap variants; 游离肌骨皮瓣修复术 depends on
// whether the combination mentions the maxilla (上颌) or the mandible
// (下颌) — with neither present the rule stays unresolved and callers must
// confirm manually.
func DefaultRules() []model.Rule {
	return []model.Rule{
		{
			Name: "游离皮瓣修复术",
			IDs:  []int{1, 3, 4},
		},
		{
			Name: "游离肌骨皮瓣修复术",
			Branches: []model.RuleBranch{
				{Keyword: "上颌", IDs: []int{9, 132}},
				{Keyword: "下颌", IDs: []int{10, 133}},
			},
		},
		{
			Name: "颈淋巴结清扫术",
			IDs:  []int{6, 21, 22},
		},
	}
}
