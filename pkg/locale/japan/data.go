package japan

var words = []string{
	"春", "夏", "秋", "冬", "山", "川", "海", "空", "雨", "雪", "風", "花", "木", "森", "道",
	"町", "村", "駅", "橋", "港", "朝", "昼", "夜", "光", "影", "声", "音", "色", "心", "夢",
	"本", "手紙", "写真", "時計", "電話", "机", "椅子", "窓", "扉", "階段", "庭", "畑", "田んぼ",
	"学校", "会社", "病院", "公園", "図書館", "市場", "商店", "食堂", "料理", "野菜", "果物",
	"魚", "肉", "米", "茶", "水", "酒", "旅", "仕事", "休日", "約束", "記憶", "未来", "過去",
}

var sentences = []string{
	"今日はとても良い天気です。",
	"駅の前に新しい喫茶店ができました。",
	"週末は家族と山へ出かける予定です。",
	"この資料は会議の前に確認してください。",
	"窓の外では雪が静かに降っています。",
	"図書館で借りた本を明日返します。",
	"新しいプロジェクトが来月から始まります。",
	"公園の桜が満開になりました。",
	"夕食には魚と野菜を使った料理を作ります。",
	"電車が遅れているので少し遅刻します。",
	"彼は毎朝川沿いの道を走っています。",
	"このお茶はとても香りが良いです。",
	"会議室の予約を変更しました。",
	"海の見える町で暮らすのが夢です。",
	"先週の報告書に誤りが見つかりました。",
	"秋になると山の木々が赤く色づきます。",
}

var paragraphs = []string{
	"朝の駅はいつも多くの人で混み合っています。電車を待つ人々は静かに本を読んだり、携帯電話を見たりしています。窓の外には高い建物が並び、遠くには山が見えます。",
	"この町には古い商店街があります。八百屋や魚屋、小さな喫茶店が並び、夕方になると買い物客でにぎわいます。店主たちは常連客と楽しそうに話しています。",
	"新しい制度は来年の四月から導入されます。利用者は事前に申請書を提出し、担当窓口で手続きを行う必要があります。詳しい内容は案内資料を確認してください。",
	"夏休みには祖父母の住む村を訪れます。田んぼの間を流れる川で魚を捕まえたり、夜には満天の星を眺めたりします。都会では味わえない静かな時間が流れています。",
	"会議では売上の推移と今後の計画について話し合いました。各部署の担当者が意見を出し合い、来期の目標を決定しました。次回の会議は月末に予定されています。",
	"図書館の二階には静かな閲覧室があります。学生たちは試験に向けて黙々と勉強しています。窓から差し込む午後の光が机の上を照らしています。",
	"港町の朝は早く、漁船が次々と戻ってきます。市場には新鮮な魚が並び、料理人たちが品定めをしています。潮の香りが町全体に広がっています。",
	"秋祭りの準備が少しずつ進んでいます。神社の境内には提灯が飾られ、子どもたちは太鼓の練習に励んでいます。当日は多くの人出が予想されます。",
}

var firstNames = []string{
	"太郎:たろう", "次郎:じろう", "一郎:いちろう", "健太:けんた", "翔太:しょうた", "大輔:だいすけ",
	"拓也:たくや", "直樹:なおき", "浩二:こうじ", "誠:まこと", "蓮:れん", "陽翔:はると",
	"悠真:ゆうま", "湊:みなと", "大和:やまと", "海斗:かいと", "颯太:そうた", "樹:いつき",
	"花子:はなこ", "美咲:みさき", "陽子:ようこ", "恵子:けいこ", "由美:ゆみ", "裕子:ゆうこ",
	"真由美:まゆみ", "愛:あい", "彩:あや", "結衣:ゆい", "葵:あおい", "陽菜:ひな",
	"凛:りん", "芽衣:めい", "さくら:さくら", "美月:みづき", "千尋:ちひろ", "明美:あけみ",
}

var lastNames = []string{
	"佐藤:さとう", "鈴木:すずき", "高橋:たかはし", "田中:たなか", "伊藤:いとう", "渡辺:わたなべ",
	"山本:やまもと", "中村:なかむら", "小林:こばやし", "加藤:かとう", "吉田:よしだ", "山田:やまだ",
	"佐々木:ささき", "山口:やまぐち", "松本:まつもと", "井上:いのうえ", "木村:きむら", "林:はやし",
	"斎藤:さいとう", "清水:しみず", "山崎:やまざき", "森:もり", "池田:いけだ", "橋本:はしもと",
	"阿部:あべ", "石川:いしかわ", "山下:やました", "中島:なかじま", "石井:いしい", "小川:おがわ",
	"前田:まえだ", "岡田:おかだ", "長谷川:はせがわ", "藤田:ふじた", "後藤:ごとう", "近藤:こんどう",
}

var companySuffixes = []string{
	"株式会社", "有限会社", "合同会社", "合名会社", "合資会社", "任意組合", "匿名組合",
	"投資事業有限責任組合", "有限責任事業組合",
}

var companyNames = []string{
	"山田商事", "東都物産", "日本橋製作所", "みなと運輸", "さくら電機", "北斗システム",
	"青空食品", "大和建設", "富士精工", "中央印刷", "はやぶさ通信", "瀬戸内水産",
	"銀河ソフト", "光陽化学", "信濃林業", "あおば不動産", "千代田興業", "朝日製菓",
}

var industries = []string{
	"農業", "林業", "漁業", "水産養殖業", "総合工事業", "職別工事業", "設備工事業",
	"食料品製造業", "飲料・たばこ・飼料製造業", "繊維工業", "木材・木製品製造業",
	"家具・装備品製造業", "パルプ・紙・紙加工品製造業", "印刷・同関連業", "化学工業",
	"石油製品・石炭製品製造業", "プラスチック製品製造業", "ゴム製品製造業", "窯業・土石製品製造業",
	"鉄鋼業", "非鉄金属製造業", "金属製品製造業", "はん用機械器具製造業", "生産用機械器具製造業",
	"業務用機械器具製造業", "電子部品・デバイス・電子回路製造業", "電気機械器具製造業",
	"情報通信機械器具製造業", "輸送用機械器具製造業", "電気業", "ガス業", "熱供給業", "水道業",
	"通信業", "放送業", "情報サービス業", "インターネット付随サービス業", "映像・音声・文字情報制作業",
	"鉄道業", "道路旅客運送業", "道路貨物運送業", "水運業", "航空運輸業", "倉庫業",
	"各種商品卸売業", "飲食料品卸売業", "機械器具卸売業", "各種商品小売業", "飲食料品小売業",
	"無店舗小売業", "銀行業", "貸金業、クレジットカード業等非預金信用機関", "金融商品取引業、商品先物取引業",
	"保険業", "不動産取引業", "不動産賃貸業・管理業", "物品賃貸業", "学術・開発研究機関",
	"専門サービス業", "広告業", "技術サービス業", "宿泊業", "飲食店", "持ち帰り・配達飲食サービス業",
	"洗濯・理容・美容・浴場業", "娯楽業", "学校教育", "医療業", "保健衛生", "社会保険・社会福祉・介護事業",
	"郵便局", "協同組合", "廃棄物処理業", "自動車整備業", "機械等修理業", "職業紹介・労働者派遣業",
	"政治・経済・文化団体", "宗教", "国家公務", "地方公務", "分類不能の産業",
}

var buildings = []string{
	"サンシャインマンション", "グリーンハイツ", "パークサイドレジデンス", "メゾン桜", "コーポ青葉",
	"リバーサイドタワー", "ロイヤルガーデン", "ヒルズ南町", "シティハイム", "ベルメゾン",
	"ハイツ富士見", "レジデンス中央", "プラザ東", "エステート西", "フォレストコート",
}

var streetNames = []string{
	"本町1-2-3", "中央2-4-6", "栄町3-1-12", "緑町1-15-8", "桜木町4-7-2", "新町2-9-14",
	"旭町5-3-1", "幸町1-8-20", "若葉3-12-5", "東町2-2-2", "西町6-1-9", "南町1-20-3",
	"北町3-5-7", "大手町1-1-1", "宮前2-16-4", "松原4-4-11", "港町1-3-18", "青葉台2-7-6",
}

var cityNames = []string{
	"札幌市中央区", "仙台市青葉区", "さいたま市浦和区", "千葉市美浜区", "新宿区", "渋谷区",
	"世田谷区", "横浜市西区", "川崎市中原区", "新潟市中央区", "金沢市", "静岡市葵区",
	"名古屋市中区", "京都市中京区", "大阪市北区", "堺市堺区", "神戸市中央区", "岡山市北区",
	"広島市中区", "松山市", "福岡市博多区", "熊本市中央区", "那覇市", "八王子市", "船橋市",
}

var stateNames = []string{
	"北海道", "青森県", "岩手県", "宮城県", "秋田県", "山形県", "福島県", "茨城県", "栃木県",
	"群馬県", "埼玉県", "千葉県", "東京都", "神奈川県", "新潟県", "富山県", "石川県", "福井県",
	"山梨県", "長野県", "岐阜県", "静岡県", "愛知県", "三重県", "滋賀県", "京都府", "大阪府",
	"兵庫県", "奈良県", "和歌山県", "鳥取県", "島根県", "岡山県", "広島県", "山口県", "徳島県",
	"香川県", "愛媛県", "高知県", "福岡県", "佐賀県", "長崎県", "熊本県", "大分県", "宮崎県",
	"鹿児島県", "沖縄県",
}

var countryNames = []string{
	"アルバ", "アフガニスタン", "アンゴラ", "アングイラ", "オーランド諸島", "アルバニア", "アンドラ",
	"アラブ首長国連邦", "アルゼンチン", "アルメニア", "アメリカ領サモア", "南極大陸", "オーストラリア",
	"オーストリア", "アゼルバイジャン", "ベルギー", "バングラデシュ", "ブルガリア", "バーレーン",
	"バハマ", "ボスニア・ヘルツェゴビナ", "ベラルーシ", "ボリビア", "ブラジル", "ブータン", "カナダ",
	"スイス", "チリ", "中国", "カメルーン", "コロンビア", "コスタリカ", "キューバ", "キプロス",
	"チェコ", "ドイツ", "デンマーク", "エクアドル", "エジプト", "スペイン", "エストニア", "エチオピア",
	"フィンランド", "フィジー", "フランス", "イギリス", "ジョージア", "ガーナ", "ギリシャ",
	"グアテマラ", "香港", "クロアチア", "ハンガリー", "インドネシア", "インド", "アイルランド",
	"イラン", "イラク", "アイスランド", "イスラエル", "イタリア", "ジャマイカ", "ヨルダン", "日本",
	"カザフスタン", "ケニア", "カンボジア", "韓国", "クウェート", "ラオス", "レバノン", "スリランカ",
	"リトアニア", "ルクセンブルク", "ラトビア", "マカオ", "モロッコ", "モナコ", "マダガスカル",
	"メキシコ", "ミャンマー", "モンゴル", "マレーシア", "ナミビア", "ナイジェリア", "オランダ",
	"ノルウェー", "ネパール", "ニュージーランド", "オマーン", "パキスタン", "パナマ", "ペルー",
	"フィリピン", "パラオ", "ポーランド", "ポルトガル", "パラグアイ", "カタール", "ルーマニア",
	"ロシア", "サウジアラビア", "シンガポール", "セルビア", "スロバキア", "スロベニア", "スウェーデン",
	"タイ", "トルコ", "台湾", "タンザニア", "ウクライナ", "ウルグアイ", "米国", "ウズベキスタン",
	"バチカン", "ベネズエラ", "ベトナム", "南アフリカ", "ザンビア", "ジンバブエ",
}
