package gru

// Model is one embedded amp profile: a flat weight vector plus the
// output level trim applied after the residual add.
type Model struct {
	Name        string
	LevelAdjust float64
	Weights     []float64
}

// Models returns the embedded amp profiles. Index order is part of
// the control surface and must stay stable.
func Models() []Model {
	return embeddedModels
}

var embeddedModels = []Model{
	{
		Name:        "Clean Twin",
		LevelAdjust: 0.85,
		Weights: []float64{
			-0.40940846, 0.81829042, -0.36175386, -0.50410948, -1.48802910, -0.34128312,
			1.77906781, 0.67863469, 1.65900653, 0.39824436, 0.63163142, 0.29652266,
			-2.66570004, 1.36840155, 0.81021575, 0.79810886, -2.70618328, -2.79022099,
			-1.42338455, -0.74910284, 0.48871359, -0.07345877, 0.83355984, -1.02757560,
			0.49392504, 0.63064716, -1.05781976, 0.51525910, 0.16698281, 0.35910157,
			-0.18609987, -0.22185477, -0.10321400, -0.03192640, 0.18962362, 0.07452818,
			-0.13420647, -0.28707369, -0.15617709, 0.36627639, -0.24238393, 0.07342762,
			0.12795569, -0.44692294, 0.01454231, 0.39187308, -0.60430915, -0.09647816,
			-0.03184175, -0.24517809, 0.14921700, -0.01868397, -0.43939700, 0.24835376,
			0.20080071, 0.28375254, 0.43217922, 0.10867310, 0.03578225, -0.38975043,
			0.18463296, -0.18352768, -0.13581057, -0.37943633, -0.29028430, -0.15933633,
			0.38665126, -0.60953761, -0.43731167, 0.07180533, 0.43300493, 0.17354909,
			-0.56998298, -0.75547045, 0.10721916, -0.22087858, -0.33593597, 0.29321137,
			0.33053586, 0.04717556, 0.07373295, 0.13030884, 0.47820122, 0.18570858,
			0.15559486, 0.16432127, -0.47049316, 0.38452006, 0.28653063, 0.15888712,
			-0.59216263, -0.19010401, 0.25269108, -0.54336428, -0.05520667, 0.30585830,
			-0.39335658, 0.48303186, 0.16558919, -0.04504163, 0.09746005, 0.19494930,
			0.03611812, 0.34369807, -0.19846337, -0.12442085, 0.31250537, 0.00803968,
			-0.26413922, 0.28393658, 0.43964927, -0.13344783, -0.41399796, -0.04042446,
			-0.04470564, -0.08939989, 0.42143109, -0.30808094, 0.37817599, -0.38049659,
			-0.23611184, 0.18945638, 0.33860709, 0.25770071, 0.10356742, 0.04270690,
			0.04574454, 0.17258408, -0.05285924, 0.08323080, 0.17181796, 0.00025184,
			0.22919472, 0.16976344, 0.60318966, 0.09748279, -0.12827789, -0.11176536,
			-0.00393168, 0.27713538, -0.10096911, 0.11574780, 0.55119038, -0.76940384,
			-0.33717258, 0.07316911, 0.11950062, 0.07157200, -0.12934545, 0.19654386,
			0.08463902, -0.15661540, 0.72901616, 0.10653986, -0.16626869, -0.02983457,
			-0.06767859, -0.01882246, -0.81842560, -0.14606971, 0.30257085, -0.35056868,
			-0.02001006, 0.28605161, 0.25685303, 0.44731560, -0.51042400, -0.10601280,
			-0.10228500, 0.18698695, 0.32753625, -0.80484887, 0.32660379, -0.43426303,
			0.20494496, -0.44764152, 0.05275582, 0.35839638, -0.04479588, 0.05733093,
			0.23913709, 0.04241316, -0.02654441, 0.45997682, 0.31454122, -0.08814452,
			0.82359757, -0.34405171, 0.27438273, -0.07971437, 0.03970972, 0.21150169,
			0.06666664, 0.19159359, -0.45819761, -0.45285332, 0.18448278, -0.28894755,
			-0.30799447, -0.44104182, 0.37991402, 0.22396740, 0.44192242, -0.28132131,
			0.00030191, -0.34209207, 0.22981122, 0.47682687, -0.26706630, 0.46809952,
			0.29640885, -0.05335040, -0.59159121, 0.42198952, -0.02887815, -0.18084847,
			0.11987861, 0.12298930, 0.44942851, -0.30604224, 0.34087120, 0.44620811,
			0.43567080, -0.05418737, -0.22320857, 0.30557182, 0.03455559, 0.03725685,
			0.42726439, -0.07903094, -0.68901756, -0.11615736, -0.55617695, 0.24563500,
			0.09511044, -0.18336215, -0.00287979, 0.24978720, 0.02368353, 0.39795645,
			-0.01838544, 0.31210043, 0.44744423, 0.48296790, -0.20154581, 0.26397126,
			-0.56279877, -0.32500482, -0.58883745, 0.32069569, -0.36958042, -0.00382921,
			-0.05766419, -0.00857926, -0.17745653, 0.07009895, 0.53738013, 0.01328057,
			0.15929464, 0.30015581, -0.05938431, -0.37790734, -0.16661864, 0.32207842,
			-0.49386767, -0.17935375, 0.30222320, 0.23782099, 0.00228544, 0.24157074,
			0.01659794, -0.11789155, -0.15639424, -0.06389521, 0.09227301, -0.05655452,
			-0.09023586, -0.07709605, -0.15317670, -0.01172749, -0.11796070, 0.03641460,
			-0.23600964, 0.03277812, -0.06416108, -0.19421479, 0.07247094, -0.02755083,
			-0.22300368, -0.08750632, 0.02910242, -0.04585822, 0.07799837, 0.07475569,
			0.06662366, 0.03266253, 0.13336969, 0.06598342, 0.04512182, -0.20839789,
			0.08965558, 0.13094252, -0.02968981, -0.04695074, 0.19402985, -0.17581325,
			0.04688569, 0.24237158, -0.09276007, 0.06895888, 0.18863808, -0.01202107,
			0.05611968, 0.09025756, -0.09057683, -0.00890958, 0.02928017, 0.08253849,
			-0.00345341, -0.01953403, -0.10160761, -0.03589752, 0.08916725, 0.01017432,
			-0.38386280, -0.37872184, 1.20000592, 0.51295243, 0.28682795, -1.16681350,
			0.27966671, 0.21631208, 0.75784363, 0.00000000,
		},
	},
	{
		Name:        "Brit Crunch",
		LevelAdjust: 1.10,
		Weights: []float64{
			-1.85991082, -3.77406595, -2.84906901, -0.36840224, -6.38466188, 5.04728359,
			-0.33287457, 1.31827606, -0.12966538, 1.85976493, -0.88551484, 1.67583106,
			1.66101695, 1.33319368, -1.16600196, 2.88836149, 0.27521313, 0.87751570,
			0.88152352, 2.86877360, -2.98462598, 2.51486886, 0.81254159, -2.34629042,
			3.14228111, 2.26370355, 0.08574528, -0.22080104, -0.10105112, -0.15551087,
			0.35861054, -0.21240578, 0.14224056, -0.52692237, 0.02971849, 0.27458395,
			-0.04618524, -0.39290799, -0.09271127, 0.07642299, -0.07253392, -0.07374468,
			-0.00719510, -0.02497633, -0.24129625, 0.07092606, 0.18367479, 0.17204554,
			-0.21114561, -0.00008800, 0.35072609, -0.26758500, 0.12740419, -0.10467892,
			0.21106180, 0.03462946, 0.25984954, 0.22522326, -0.00936481, 0.11494847,
			-0.04700590, 0.21861437, -0.02240821, -0.24358013, -0.10458396, 0.31395403,
			0.14466212, 0.04235043, -0.14066499, -0.33941493, 0.06561585, 0.04850218,
			-0.32138173, -0.01170982, 0.23452701, 0.02382923, -0.01440030, 0.09166575,
			0.08583194, 0.15880967, -0.10504930, 0.02207152, -0.32877564, -0.31007872,
			-0.03327093, -0.07554774, -0.18568696, -0.25056173, 0.21648956, 0.01194093,
			-0.30965395, -0.44088051, 0.25765069, -0.12331665, -0.47067965, -0.29395821,
			0.06426875, 0.25446536, 0.35172057, 0.14321765, -0.08610088, -0.12440299,
			0.08746067, 0.25328392, 0.00127146, -0.11889601, -0.11740756, 0.23624975,
			-0.03213663, 0.45594972, -0.08570908, -0.54194876, -0.21048834, -0.25764038,
			-0.05763778, 0.25434408, -0.22662653, 0.10795068, 0.39572077, 0.16382417,
			0.13766605, 0.20098804, 0.23880376, -0.11229612, 0.11583683, -0.12567902,
			-0.21019911, 0.04442287, -0.09507091, 0.18866978, -0.39769851, 0.14249167,
			0.09645488, -0.01779927, -0.13344276, -0.23460777, -0.05425168, 0.03293636,
			-0.12415992, 0.14659580, -0.19807826, 0.21884921, -0.12365379, 0.13657675,
			-0.09193987, 0.59822511, -0.45966641, 0.37133790, 0.16429171, 0.28027777,
			-0.32603211, -0.11615593, -0.44584468, -0.04049976, -0.05796557, -0.03555116,
			-0.12457847, -0.27643400, 0.01051158, 0.35618371, 0.09092317, -0.15214953,
			0.10828841, 0.14597452, -0.20171395, -0.12710296, 0.21612579, 0.10535421,
			-0.27662660, -0.08460751, -0.23426371, 0.30666000, -0.07548028, -0.15244878,
			-0.28538955, 0.41196071, 0.04336085, 0.23567907, -0.09693645, 0.27446520,
			0.03161283, -0.10843262, 0.02924631, 0.07431942, 0.18754027, 0.18978129,
			-0.52941147, 0.03703332, -0.25701710, 0.07806059, 0.15507111, 0.02601570,
			-0.05995331, 0.15313019, 0.05412793, -0.22203519, 0.17815009, 0.20543869,
			0.07849227, 0.11734823, -0.07260639, -0.05858405, 0.00988471, -0.23626841,
			0.30283684, 0.12964320, 0.34983218, -0.08639832, 0.28279278, -0.43711722,
			-0.03415105, 0.25161884, -0.01218281, -0.22090759, 0.22581472, -0.04779044,
			0.09743613, 0.01339480, -0.03855755, 0.01902943, -0.54729330, -0.45196190,
			0.59018458, -0.26432444, 0.00084937, 0.13872354, 0.45929185, 0.21816001,
			0.08420001, 0.01388024, -0.26556260, -0.46387316, -0.07757827, -0.01690200,
			0.39717435, 0.08936051, -0.07161509, -0.17562155, 0.17789577, -0.01783831,
			0.34111867, 0.46012665, 0.19623266, 0.07157032, 0.13406079, 0.28436750,
			-0.16725783, 0.01178580, -0.07267472, -0.07522749, 0.38271611, -0.04037227,
			0.07589893, 0.28629363, -0.03878878, 0.28510135, -0.06021692, 0.13862980,
			-0.08467329, 0.00493226, 0.38700369, -0.01729742, 0.04201664, 0.29433620,
			0.05898683, 0.11911810, -0.25930271, 0.23370621, 0.46831990, 0.21733423,
			-0.00048078, 0.05990084, -0.21638065, 0.01687014, -0.10703895, 0.06273767,
			0.12199218, -0.01006981, -0.03710411, 0.05309687, -0.13993542, -0.01904371,
			-0.05489901, -0.03590850, 0.25866112, 0.02010449, -0.07226059, -0.17898752,
			0.05733294, -0.08833771, 0.09968827, 0.23725391, 0.02937729, -0.02235638,
			-0.08071546, -0.08581181, 0.12819427, 0.01968955, -0.06368553, -0.08818179,
			-0.00676911, 0.20844977, -0.03824892, -0.07119867, 0.03849258, -0.21580673,
			-0.09957460, 0.08441676, 0.04425737, 0.02971886, 0.14664615, -0.20112294,
			0.05159159, -0.02371466, -0.02972109, -0.09529741, 0.04610333, 0.20662336,
			0.03397216, 0.02324495, -0.03287394, 0.04558337, -0.11254824, 0.08532318,
			-1.34595930, -0.13063657, -0.33364805, 0.03610250, -0.12414748, -0.03918383,
			-0.18971168, -0.29768123, -0.64231610, 0.00000000,
		},
	},
}
