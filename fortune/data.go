package fortune

// The sixty sticks follow the traditional sexagenary (六十甲子) order.
// Poem and advice text stand in for the temple's published 籤詩 until the
// licensed text is supplied; numbers and cycle labels are authoritative.
var sticks = [StickCount]Stick{
	{1, "甲子", "日出東方雲霧開，光明漸照世間來，心頭所慮皆消散，守得誠時福自該", "凡事漸明，守誠待時"},
	{2, "乙丑", "寒梅傲雪待春風，枝上芳菲未見紅，莫怨眼前花信晚，一朝開遍滿園中", "時機未到，耐心候之"},
	{3, "丙寅", "行舟已順水東流，帆飽風輕不用愁，若問前程何處去，青山盡處有高樓", "順勢而行，前程可期"},
	{4, "丁卯", "月被雲遮光未明，心中疑慮暗自生，雲開月現終有時，不必徬徨問前程", "疑慮暫存，靜待雲開"},
	{5, "戊辰", "春耕夏種各有時，勤力之人天不欺，莫學他人求捷徑，秋來倉廩自豐盈", "腳踏實地，勤則有成"},
	{6, "己巳", "枯木逢春又發芽，敗中取勝莫咨嗟，前番辛苦今番補，否極泰來福祿加", "轉機已現，舊事可為"},
	{7, "庚午", "大路平坦任君行，何須歧路問旁人，心頭打定一主意，直到長安見太平", "主意既定，勿聽雜言"},
	{8, "辛未", "風起波濤船莫開，暫時停泊且徘徊，待得風平浪靜後，滿載而歸笑顏開", "暫緩行事，靜待風平"},
	{9, "壬申", "貴人相遇在中途，提攜扶助上雲衢，自身也須勤努力，莫負良機一點無", "貴人可遇，仍須自勤"},
	{10, "癸酉", "燈下讀書人未眠，十年寒窗志愈堅，一朝題名金榜上，方知辛苦不徒然", "久志必酬，莫半途廢"},
	{11, "甲戌", "家中和氣福自生，何必他鄉問前程，守得田園勤照顧，自有豐年慶有成", "安守本分，和氣生福"},
	{12, "乙亥", "雲裡孤鴻失了群，聲聲哀叫不堪聞，幸有南枝可棲息，暫且安身待日春", "暫居人下，來春再起"},
	{13, "丙子", "井中之水清且甘，取之不竭養千家，莫嫌目下名聲小，德澤綿長自可誇", "小而能久，德在其中"},
	{14, "丁丑", "雨過天青山色新，出門何處不逢春，所求謀望皆如意，只恐遲疑誤了辰", "時運正好，切莫遲疑"},
	{15, "戊寅", "虎落平陽受犬欺，得時之日再揚眉，勸君且忍眼前氣，雲散月明總有期", "暫受委屈，忍之則安"},
	{16, "己卯", "花開結子一半空，相許之言未可憑，再三斟酌方下手，免教後悔嘆無窮", "言約難憑，審慎為上"},
	{17, "庚辰", "高山流水遇知音，一曲彈來萬兩金，所謀所望逢人助，何愁前路不光明", "知音相助，謀望可成"},
	{18, "辛巳", "久旱逢霖草木蘇，田中禾稻盡歡娛，從今家道漸豐足，不似當初窘迫途", "久困得解，家道漸豐"},
	{19, "壬午", "夜半敲門莫便開，且聽聲息辨明白，是非只為多開口，謹慎提防免禍災", "慎防小人，少言為佳"},
	{20, "癸未", "鯉魚逆水上灘頭，費盡氣力未到頭，若得一朝雷雨助，禹門一躍過龍樓", "力有未逮，待助而成"},
	{21, "甲申", "秋月當空分外明，家家戶戶慶團圓，所問之事皆圓滿，不用憂疑不用驚", "圓滿之象，安心可也"},
	{22, "乙酉", "路上崎嶇馬蹄輕，前行還有未平坑，勸君緩轡徐徐進，性急翻教誤了程", "緩進則達，急則生變"},
	{23, "丙戌", "簷前鵲噪報佳音，遠客將歸喜自臨，所望之事終有應，不須疑慮枉勞心", "佳音將至，不必多疑"},
	{24, "丁亥", "舊事重提恐惹非，不如放下著新衣，眼前自有新機在，何必回頭戀落暉", "舊事莫戀，新機可圖"},
	{25, "戊子", "水到渠成事自圓，不勞心力不勞錢，時人若問成何日，瓜熟蒂落在眼前", "水到渠成，近在眼前"},
	{26, "己丑", "雪裡埋身凍未消，出頭之日尚迢迢，勸君積德行方便，自有陽和凍自銷", "時運未至，積德待暖"},
	{27, "庚寅", "一箭射中紅心上，名利雙收喜氣揚，只是風光莫太露，太露風光惹禍殃", "得意之時，戒驕戒露"},
	{28, "辛卯", "東邊日出西邊雨，道是無晴卻有晴，事有兩端難決斷，細看來意自分明", "事在兩可，細察則明"},
	{29, "壬辰", "龍困淺灘未得時，風雲際會自有期，且將螢火暫相照，他日雷門大展旗", "潛龍勿用，候時而動"},
	{30, "癸巳", "行到水窮坐看雲，眼前無路莫愁身，山重水複疑無路，柳暗花明又一村", "絕處有路，心寬自現"},
	{31, "甲午", "忠言逆耳利於行，良藥苦口利於病，目下雖然不如意，他時回首謝此情", "逆言可納，苦盡甘來"},
	{32, "乙未", "鏡中觀花色色鮮，伸手攀來總是空，勸君莫戀虛花景，實地耕耘始有功", "虛景莫貪，務實為要"},
	{33, "丙申", "舟行江心遇順風，不勞搖櫓自流東，所謀之事皆遂意，猶如明月映水中", "順風之勢，謀事皆宜"},
	{34, "丁酉", "蜘蛛結網費經營，風雨一來網不成，再織還須擇簷下，安身立命免虛驚", "經營須擇地，防風雨之虞"},
	{35, "戊戌", "守舊如同舊桷題，前程欲進有高低，飛騰必待風雲便，切莫妄為自惹迷", "守舊待便，莫自妄為"},
	{36, "己亥", "福如東海壽如山，君爾何須嘆苦難，命內自然逢大吉，祈保分明得平安", "福壽之象，平安可保"},
	{37, "庚子", "運逐潮水自漲時，不須著力任東西，兩人皆得其和合，名利雙全更不疑", "運勢自來，和合雙全"},
	{38, "辛丑", "患難之中有貴扶，恰如枯木再生枝，莫言此事終無望，否去泰來總有時", "難中有扶，否極泰來"},
	{39, "壬寅", "口舌當防入耳來，是非場上莫徘徊，退身一步天地闊，忍得一時禍自開", "防口舌事，退一步安"},
	{40, "癸卯", "西風吹動桂花香，好事從來不用忙，目下營求且緩緩，秋期至日自芬芳", "好事多磨，秋期自成"},
	{41, "甲辰", "遊魚卻在碧波池，撥刺纔看躍起時，應是化龍終有日，目前且與眾相隨", "終有化龍日，暫與眾同"},
	{42, "乙巳", "一把寶劍出匣中，光芒燦爛逼人紅，得遇高人攜帶去，立見功名建大功", "遇人提攜，功名可立"},
	{43, "丙午", "天賜福德在爾家，何須疑慮嘆嗟呀，但存方寸行好事，門庭自然享榮華", "心存善念，福德自臨"},
	{44, "丁未", "棋逢敵手費思量，一著爭先一著防，勝負未分休妄動，靜觀變化始無殃", "勢均力敵，靜觀其變"},
	{45, "戊申", "溫故知新事可行，昔年根基尚牢盈，重整旗鼓從頭起，勝似當初舊日情", "舊基可用，重整有成"},
	{46, "己酉", "千里之行始足下，高山亦可一步登，莫嫌進步遲與緩，功到自然事竟成", "積步致遠，功到自成"},
	{47, "庚戌", "錦上添花色愈鮮，運逢祿馬喜雙全，時人莫訝功名晚，一舉成名天下傳", "喜上加喜，成名雖晚必傳"},
	{48, "辛亥", "登山涉水正天寒，兄弟姻親那得安，幸遇虎頭人一喚，全家遂保汝重歡", "艱難之際，得人提點"},
	{49, "壬子", "言語雖多不可從，風雲靜處未行龍，暗中終得明人助，君爾何須問重重", "眾言勿從，暗有人扶"},
	{50, "癸丑", "佛前發誓無異心，且看前途得好音，此物原來本是鐵，也能變化得成金", "誠心不移，鐵可成金"},
	{51, "甲寅", "夏日炎天日最長，人人愁熱悶非常，天地也解知人意，薰風拂拂自然涼", "困熱將解，自有清涼"},
	{52, "乙卯", "功名事業本由天，不須掛念意懸懸，若問中間遲與速，風雲際會在眼前", "得失由天，際會在前"},
	{53, "丙辰", "船到橋頭自然直，何須百計問陰陽，世事盡從忙裡錯，好人半自苦中商", "莫過籌謀，從容應對"},
	{54, "丁巳", "夢中得寶醒來無，自謂南山只是鋤，若問婚姻並問病，別尋來路為相扶", "虛得非實，另尋他途"},
	{55, "戊午", "將軍得勝獻凱歌，百萬雄師奈爾何，問爾謀望皆大吉，再添福祿又如何", "大吉之象，謀望皆遂"},
	{56, "己未", "滿園秋菊雜野蒿，善惡真偽辨分毫，提防假作真時節，誤把他人當故交", "真偽難辨，慎擇所交"},
	{57, "庚申", "直上重樓去藏身，四圍荊棘繞為林，天高君命長安好，有心落葉不歸心", "處境雖困，志向宜堅"},
	{58, "辛酉", "蛇身意欲變成龍，只恐命內運未通，久病且作寬心坐，言語雖多不可從", "運尚未通，寬心靜養"},
	{59, "壬戌", "有心做福莫遲疑，求名清吉正當時，此事必能成會合，財寶自然喜相隨", "行善趁時，名利相隨"},
	{60, "癸亥", "月出光輝四海明，前途祿位見太平，浮雲掃退終無事，可保禍患不臨身", "撥雲見月，諸事太平"},
}
