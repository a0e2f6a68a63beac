package tags

// List pairs one curated speaker id list with the tag its members receive.
type List struct {
	Tag string
	IDs []string
}

// Lists returns the curated participation lists in their fixed application
// order: plenary, the main tracks, the workshops, then the co-located
// events. This is hand-maintained data; it has to be kept in sync with
// conference scheduling by hand.
func Lists() []List {
	return []List{
		{Tag: "plenary", IDs: []string{
			"tao-jiang", "mehdi-snene", "bill-ren", "michael-yuan",
			"yonghua-lin", "li-jianzhong",
		}},
		{Tag: "ai-models-infra", IDs: []string{
			"guang-liu", "krzysztof-ociepa", "markus-tavenrath", "yuxuan-zhang",
			"speaker-zhu-de-jiang", "zhang-yubo", "chen-zicong", "speaker-chen-hai-quan",
			"speaker-ding-yi-bin", "aurlienmorgan-claudon", "speaker-he-wan-qing",
			"kaichao-you", "jingdong-chen", "vincent-caldeira", "speaker-wang-tian-ce",
			"paul-yang", "zhang-renwei", "xuan-son-nguyen", "richard-reiner", "jingya-huang",
		}},
		{Tag: "embodied-ai", IDs: []string{
			"satya-mallick", "xueqin-dong", "edgar-riba", "mashengyue", "speaker-yin-yun-peng",
			"jinwei-gu", "speaker-wang-peng-wei", "xuan-xia", "cen-ming", "yu-huang",
			"xavier-tao", "tao-li", "martino-russi", "yuyuan-yuan", "jian-shi", "yongsen-mao",
		}},
		{Tag: "agentic-web", IDs: []string{
			"philippe-le-hegaret", "speaker-chang-gao-wei", "manuel-rego", "speaker-zhang-yun-fei",
			"joaquin-salvachua", "jennie-shi", "jesse-ezell", "zhigang-sun", "drummond-reed",
			"markus-sabadello", "chunhui-mo", "wenjing-chu", "jos-andrs-muoz-arcentales",
			"robin-shang", "martin-alvarez-espinar", "guangzhen-li",
		}},
		{Tag: "apps-agents", IDs: []string{
			"speaker-wang-xin-meng", "speaker-di-ji-dong", "zhuo-wu", "wilson-wang",
			"yin-zhenxi", "shuangrui-chen", "hugejile", "evan-fannin", "yanzhi-wang",
			"speaker-liu-nan-bing", "speaker-han-hong-ying", "speaker-bai-ting",
			"xiang-ying", "sizhe-cheng", "alexy-khrabrov-", "zhao-weiqi", "zhiyu-li",
			"abdallah-essa", "dandjinou-charbel",
		}},
		{Tag: "ai-next", IDs: []string{
			"wang-jialiang", "speaker-wei-wei", "alexandra-boucherifi", "yichuan-yue",
			"huixin-xue", "jixun-yao", "zhenghao-chen", "salim-nahle", "wei-wang",
			"karol-stryja", "katarzyna-z-staroslawska", "speaker-shi-zhong-zhi",
			"nicolas-flores-herr", "jingbin-zhang",
			"kai-du", "qian-zheng", "hu-he", "speaker-zhang-quan-shi", "shiwei-liu",
		}},
		{Tag: "ws-sglang", IDs: []string{
			"yi-zhang", "shangming-cai-", "yanbo-yang", "junrong-lin", "yikai-zhu",
			"chao-wang", "yizhong-cao-", "xiaoming-bao", "speaker-wang-dong", "xiaolei-zhang",
		}},
		{Tag: "ws-cangjie", IDs: []string{
			"speaker-wang-xue-zhi", "speaker-zhao-dong", "speaker-pan-wan-kun",
			"speaker-zhang-yin", "wang-jianfeng", "speaker-chen-yu-long",
			"speaker-wu-jing-run", "speaker-zhang-hao-yang",
		}},
		{Tag: "ws-dora", IDs: []string{
			"ruping-cen", "yang-li", "yiming-zhang", "baorui-lv", "tao-li",
			"xiang-yang", "hu-youhao", "zhongjin-lu", "yijun-chen", "gege-wang", "bob-ding",
		}},
		{Tag: "ws-future-web", IDs: []string{
			"ming-fu", "martin-robinson", "gregory-terzian", "jing-zhang",
			"zhizhen-ye", "jingshi-shangguan", "philippe-le-hegaret",
		}},
		{Tag: "ws-edge-ai", IDs: []string{
			"mats-lundgren", "zhuo-wu", "xuan-son-nguyen", "yanzhi-wang",
			"jingyua-huang", "weiyu-xie", "sebastien-crozet", "yue-bao", "markus-tavenrath",
		}},
		{Tag: "ws-cann", IDs: []string{
			"xiaolei-wang", "xu-han", "su-tong-hua", "jinxiang-wang",
		}},
		{Tag: "ws-ai-education", IDs: []string{
			"yuegang-liu", "yuqing-yan", "maohua-zhou", "weidong-shao", "zhigang-sun",
			"haiyang-xin", "yan-feng", "yanzhi-wang", "yonghui-wu",
		}},
		{Tag: "ws-embedded-rust", IDs: []string{
			"rik-arends", "sebastian-michailidis",
		}},
		{Tag: "ws-flutter", IDs: []string{
			"jesse-ezell", "matt-carroll",
		}},
		{Tag: "ws-rn", IDs: []string{
			"michal-pierzchala", "oskar-kwasniewski",
		}},
		{Tag: "ws-chitu", IDs: []string{
			"speaker-he-wan-qing", "shizhi-tang", "runqing-zhang", "jian-li",
			"ji-li", "tongyu-guo", "zhixing-li", "zhibin-jia", "xiaowei-shen",
		}},
		{Tag: "ws-solana", IDs: []string{
			"mike-ma-solana",
		}},
		{Tag: "ws-globalization", IDs: []string{
			"guofeng-zhang", "william-guo", "richard-lin", "adina-yakefu",
			"michael-yuan", "qin-wang",
		}},
		{Tag: "forum-aivision", IDs: []string{
			"tao-jiang", "salim-nahle", "vivian-cai", "wei-wang", "bella-ren",
			"zheng-haoyun", "yuegang-liu", "zhigang-sun", "yuqing-yan", "wang-juchen",
			"alexandra-boucherifi", "yan-feng", "speaker-wei-wei", "maohua-zhou",
			"zhan-yiwen", "li-jianzhong", "yin-danqing", "zhao-simiao", "liu-qunkai",
			"kai-du", "nicolas-flores-herr", "kuang-kun", "florent-zara", "zhou-hui",
			"cailean-osborne", "jesse-mccrosky", "xiaohu-zhu", "christian-maitre",
			"wu-shaoqing", "abdallah-essa", "emily-chen", "mehdi-snene", "sameer-chauhan",
			"emily-bennett", "carlos-correia", "yonghua-lin", "qin-wang", "richard-bian",
			"piao-yishi", "bill-ren",
		}},
		{Tag: "open-for-sdg", IDs: []string{
			"tiejun-huang", "mehdi-snene", "yonghua-lin", "nicolas-flores-herr",
			"joaquin-salvachua", "johann-diedrick", "richard-bian", "yong-qin",
			"bangxu-yu", "xinwei-hu", "anni-lai", "nooman-fehri", "vincent-caldeira",
			"matt-white", "liyun-yang", "alex-zhu", "alexy-khrabrov-", "minghui-zhou",
			"mohamed-farahat", "walid-mathlouthi", "yao-chen", "bryan-che", "kai-du",
			"satya-mallick", "yin-peng",
		}},
		// Every Rust China event shares the rustchinaconf tag.
		{Tag: "rustchinaconf", IDs: []string{
			"mike-tang", "rebecca-rumbul", "meng-ke", "yizhou-lu", "jack-huey",
			"josh-triplett", "miguel-ojeda", "yongyi-yu", "rolland-dudemaine",
			"sebastien-crozet", "yu-chen", "michael-yuan",
		}},
		{Tag: "rustchinaconf", IDs: []string{
			"james-munns", "adam-harvey", "zili-chen", "jindi-shen", "dean-little",
			"haobo-gu", "zhenchi-zhong", "hongbo-zhang", "yubin-zhao", "xiaoyu-chen",
			"xuecheng-yang", "zan-pan",
		}},
		{Tag: "rustchinaconf", IDs: []string{
			"esteban-kuber", "jonathan-kelly", "isacc-zhang", "orhun-parmaksiz",
			"alejandra-gonzalez", "yuan-li", "jiayan-wu", "bohao-tang", "kevin-boos",
			"guillaume-gomez", "david-lattimore", "qiqi-zhang", "xudong-huang", "jiping-zhou",
		}},
		{Tag: "rustchinaconf", IDs: []string{
			"hongliang-tian", "bart-massey", "li-zhang", "rik-arends", "han-jiang",
			"hui-ding", "manuel-drehwald", "zhifeng-sun", "xuewo-ding", "yifei-sheng",
			"lio-qing", "archer-aimo", "yuxiao-wang", "mingxuan-liu",
		}},
	}
}

// virtualIDs are roster identifiers that stand for a track, workshop, or
// co-located event rather than a person. They never appear in the curated
// lists and are exempt from "not in mapping" warnings.
var virtualIDs = map[string]struct{}{
	"all":              {},
	"plenary":          {},
	"ai-models-infra":  {},
	"embodied-ai":      {},
	"agentic-web":      {},
	"apps-agents":      {},
	"ai-next":          {},
	"ws-sglang":        {},
	"ws-cangjie":       {},
	"ws-dora":          {},
	"ws-future-web":    {},
	"ws-edge-ai":       {},
	"ws-cann":          {},
	"ws-flutter":       {},
	"ws-chitu":         {},
	"ws-ai-education":  {},
	"ws-rn":            {},
	"ws-rust":          {},
	"ws-makepad":       {},
	"ws-embedded-rust": {},
	"ws-solana":        {},
	"ws-globalization": {},
	"open-for-sdg":     {},
	"forum-aivision":   {},
	"rustchinaconf":    {},
}

// IsVirtual reports whether id is a pseudo-speaker standing for an event.
func IsVirtual(id string) bool {
	_, ok := virtualIDs[id]
	return ok
}
