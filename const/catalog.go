package constants

import (
	appschema "github.com/ZAITAKUSANTEI/my-skin-app/models"
)

// TREATMENT_CATALOG is the clinic menu embedded verbatim into every
// report prompt. Prices are in yen.
var TREATMENT_CATALOG = []appschema.Treatment{
	// シワ
	{Category: "シワ", Name: "ボトックス注射（額・眉間）", Description: "表情筋の動きを緩めて額や眉間の表情ジワを目立たなくする注射治療です", Price: 16500},
	{Category: "シワ", Name: "ヒアルロン酸注入（ほうれい線）", Description: "ほうれい線や深いシワに直接ヒアルロン酸を注入しふっくらと持ち上げます", Price: 38500},
	{Category: "シワ", Name: "ベビーコラーゲン注入", Description: "目元や口元の浅い小ジワにコラーゲンを注入し自然な仕上がりで改善します", Price: 66000},
	{Category: "シワ", Name: "フラクショナルCO2レーザー", Description: "微細なレーザーで肌の再生を促し小ジワとキメの乱れを改善します", Price: 27500},
	{Category: "シワ", Name: "リジュラン注射", Description: "サーモン由来ポリヌクレオチドで肌本来の再生力を高め目元の小ジワを改善します", Price: 44000},

	// たるみ
	{Category: "たるみ", Name: "HIFUフルフェイス", Description: "超音波エネルギーをSMAS筋膜に届けて顔全体を引き締めるリフトアップ治療です", Price: 165000},
	{Category: "たるみ", Name: "糸リフト（4本）", Description: "溶ける糸を皮下に挿入しフェイスラインのたるみを物理的に引き上げます", Price: 132000},
	{Category: "たるみ", Name: "サーマクールFLX", Description: "高周波で真皮層を加熱しコラーゲン生成を促して肌を引き締めます", Price: 198000},
	{Category: "たるみ", Name: "ハイフシャワー", Description: "肌表層に浅い超音波を均一に当てて軽度のたるみと肌の引き締めを行います", Price: 49500},
	{Category: "たるみ", Name: "ラジオ波リフト", Description: "高周波の温熱効果でフェイスラインをすっきりと整えるマイルドな引き締め治療です", Price: 33000},

	// 毛穴
	{Category: "毛穴", Name: "ダーマペン4", Description: "極細針で微細な穴を開け創傷治癒の力で毛穴の開きとニキビ跡を改善します", Price: 25300},
	{Category: "毛穴", Name: "ピコフラクショナルレーザー", Description: "ピコ秒レーザーで真皮に微細な刺激を与え毛穴の開きを引き締めます", Price: 33000},
	{Category: "毛穴", Name: "カーボンピーリング", Description: "カーボンローションとレーザーで毛穴の汚れと黒ずみを除去し引き締めます", Price: 19800},
	{Category: "毛穴", Name: "ケミカルピーリング（サリチル酸）", Description: "古い角質を穏やかに除去して毛穴詰まりとざらつきを改善します", Price: 11000},
	{Category: "毛穴", Name: "ハイドラフェイシャル", Description: "水流で毛穴の汚れを吸引洗浄しながら美容液を導入する複合トリートメントです", Price: 16500},

	// 赤ら顔
	{Category: "赤ら顔", Name: "Vビームレーザー", Description: "血管に反応するレーザーで毛細血管拡張による赤ら顔を改善します", Price: 22000},
	{Category: "赤ら顔", Name: "IPL光治療（赤み用）", Description: "広帯域の光で赤みと炎症後の色むらを穏やかに改善します", Price: 27500},
	{Category: "赤ら顔", Name: "ロングパルスYAGレーザー", Description: "深部の血管に作用し頬や小鼻の持続的な赤みを軽減します", Price: 30800},
	{Category: "赤ら顔", Name: "高濃度ビタミンC導入", Description: "抗炎症作用のあるビタミンCをイオン導入し敏感な赤みを鎮めます", Price: 8800},
	{Category: "赤ら顔", Name: "アゼライン酸ピーリング", Description: "酒さ傾向の肌にも使える穏やかなピーリングで赤みとほてりを抑えます", Price: 13200},

	// シミ・色素沈着
	{Category: "シミ・色素沈着", Name: "ピコスポット", Description: "ピコ秒レーザーで気になるシミを狙い撃ちし短いダウンタイムで除去します", Price: 13200},
	{Category: "シミ・色素沈着", Name: "レーザートーニング", Description: "弱い出力のレーザーを繰り返し照射して肝斑とくすんだ色むらを改善します", Price: 16500},
	{Category: "シミ・色素沈着", Name: "フォトフェイシャルM22", Description: "光エネルギーでシミ・そばかすを浮かせて排出し透明感を引き出します", Price: 29700},
	{Category: "シミ・色素沈着", Name: "トラネキサム酸イオン導入", Description: "美白有効成分を肌深部に届けてメラニン生成を抑制します", Price: 9900},
	{Category: "シミ・色素沈着", Name: "ゼオスキンプログラム", Description: "医療用スキンケアで肌のターンオーバーを整え色素沈着を根本から改善します", Price: 88000},

	// 肌質改善
	{Category: "肌質改善", Name: "水光注射", Description: "ヒアルロン酸と美容成分を肌全体に細かく注入し内側から潤う肌に導きます", Price: 38500},
	{Category: "肌質改善", Name: "プラセンタ注射", Description: "成長因子を含むプラセンタで肌の代謝を高め疲れた肌を立て直します", Price: 3300},
	{Category: "肌質改善", Name: "白玉点滴", Description: "グルタチオン配合の点滴で全身のくすみ対策と透明感アップを図ります", Price: 11000},
	{Category: "肌質改善", Name: "エレクトロポレーション", Description: "電気の力で美容成分を針を使わず肌深層へ浸透させます", Price: 13200},
	{Category: "肌質改善", Name: "マッサージピール", Description: "剥離の少ない薬剤でハリとツヤを引き出すコラーゲンピールです", Price: 14300},

	// 脂肪除去
	{Category: "脂肪除去", Name: "脂肪溶解注射（顔・1本）", Description: "植物由来成分の注射でフェイスラインや顎下の脂肪を少しずつ減らします", Price: 9900},
	{Category: "脂肪除去", Name: "クールスカルプティング（顎下）", Description: "脂肪細胞を凍結して自然に排出させる切らない部分痩せ治療です", Price: 66000},
	{Category: "脂肪除去", Name: "顔脂肪吸引（頬・顎下）", Description: "カニューレで余分な脂肪を直接取り除きすっきりした輪郭を作ります", Price: 330000},
	{Category: "脂肪除去", Name: "バッカルファット除去", Description: "口腔内から頬深部の脂肪を取り出しもたつきとたるみを予防します", Price: 275000},
	{Category: "脂肪除去", Name: "ハイフ（顎下集中）", Description: "超音波で顎下の脂肪層に熱を加え引き締めながら脂肪を減らします", Price: 44000},
}
