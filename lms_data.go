package growth

// WHO Child Growth Standards, birth to 24 months, monthly resolution.
// Never mutated after process start.
var referenceTables = map[tableKey][]ReferenceRow{
	{MeasurementWeight, SexMale}:   weightMale,
	{MeasurementWeight, SexFemale}: weightFemale,
	{MeasurementHeight, SexMale}:   heightMale,
	{MeasurementHeight, SexFemale}: heightFemale,
	{MeasurementHead, SexMale}:     headMale,
	{MeasurementHead, SexFemale}:   headFemale,
}

// weight-for-age, kilograms
var weightMale = []ReferenceRow{
	{0, LMSParams{0.3487, 3.3464, 0.14602}},
	{1, LMSParams{0.2297, 4.4709, 0.13395}},
	{2, LMSParams{0.1970, 5.5675, 0.12385}},
	{3, LMSParams{0.1738, 6.3762, 0.11727}},
	{4, LMSParams{0.1553, 7.0023, 0.11316}},
	{5, LMSParams{0.1395, 7.5105, 0.11080}},
	{6, LMSParams{0.1257, 7.9340, 0.10958}},
	{7, LMSParams{0.1134, 8.2970, 0.10902}},
	{8, LMSParams{0.1021, 8.6151, 0.10882}},
	{9, LMSParams{0.0917, 8.9014, 0.10881}},
	{10, LMSParams{0.0820, 9.1649, 0.10891}},
	{11, LMSParams{0.0730, 9.4122, 0.10906}},
	{12, LMSParams{0.0644, 9.6479, 0.10925}},
	{13, LMSParams{0.0563, 9.8749, 0.10949}},
	{14, LMSParams{0.0487, 10.0953, 0.10976}},
	{15, LMSParams{0.0413, 10.3108, 0.11007}},
	{16, LMSParams{0.0343, 10.5228, 0.11041}},
	{17, LMSParams{0.0275, 10.7319, 0.11079}},
	{18, LMSParams{0.0211, 10.9385, 0.11119}},
	{19, LMSParams{0.0148, 11.1430, 0.11164}},
	{20, LMSParams{0.0087, 11.3462, 0.11211}},
	{21, LMSParams{0.0029, 11.5486, 0.11261}},
	{22, LMSParams{-0.0028, 11.7504, 0.11314}},
	{23, LMSParams{-0.0083, 11.9514, 0.11369}},
	{24, LMSParams{-0.0137, 12.1515, 0.11426}},
}

var weightFemale = []ReferenceRow{
	{0, LMSParams{0.3809, 3.2322, 0.14171}},
	{1, LMSParams{0.1714, 4.1873, 0.13724}},
	{2, LMSParams{0.0962, 5.1282, 0.13000}},
	{3, LMSParams{0.0402, 5.8458, 0.12619}},
	{4, LMSParams{-0.0050, 6.4237, 0.12402}},
	{5, LMSParams{-0.0430, 6.8985, 0.12274}},
	{6, LMSParams{-0.0756, 7.2970, 0.12204}},
	{7, LMSParams{-0.1039, 7.6422, 0.12178}},
	{8, LMSParams{-0.1288, 7.9487, 0.12181}},
	{9, LMSParams{-0.1507, 8.2254, 0.12199}},
	{10, LMSParams{-0.1700, 8.4800, 0.12223}},
	{11, LMSParams{-0.1872, 8.7192, 0.12247}},
	{12, LMSParams{-0.2024, 8.9481, 0.12268}},
	{13, LMSParams{-0.2158, 9.1699, 0.12283}},
	{14, LMSParams{-0.2278, 9.3870, 0.12294}},
	{15, LMSParams{-0.2384, 9.6008, 0.12299}},
	{16, LMSParams{-0.2478, 9.8124, 0.12303}},
	{17, LMSParams{-0.2562, 10.0226, 0.12306}},
	{18, LMSParams{-0.2637, 10.2315, 0.12309}},
	{19, LMSParams{-0.2703, 10.4393, 0.12315}},
	{20, LMSParams{-0.2762, 10.6464, 0.12323}},
	{21, LMSParams{-0.2815, 10.8534, 0.12335}},
	{22, LMSParams{-0.2862, 11.0608, 0.12350}},
	{23, LMSParams{-0.2903, 11.2688, 0.12369}},
	{24, LMSParams{-0.2941, 11.4775, 0.12390}},
}

// length-for-age, centimeters
var heightMale = []ReferenceRow{
	{0, LMSParams{1, 49.8842, 0.03795}},
	{1, LMSParams{1, 54.7244, 0.03557}},
	{2, LMSParams{1, 58.4249, 0.03424}},
	{3, LMSParams{1, 61.4292, 0.03328}},
	{4, LMSParams{1, 63.8860, 0.03257}},
	{5, LMSParams{1, 65.9026, 0.03204}},
	{6, LMSParams{1, 67.6236, 0.03165}},
	{7, LMSParams{1, 69.1645, 0.03139}},
	{8, LMSParams{1, 70.5994, 0.03124}},
	{9, LMSParams{1, 71.9687, 0.03117}},
	{10, LMSParams{1, 73.2812, 0.03118}},
	{11, LMSParams{1, 74.5388, 0.03125}},
	{12, LMSParams{1, 75.7488, 0.03137}},
	{13, LMSParams{1, 76.9186, 0.03154}},
	{14, LMSParams{1, 78.0497, 0.03174}},
	{15, LMSParams{1, 79.1458, 0.03197}},
	{16, LMSParams{1, 80.2113, 0.03222}},
	{17, LMSParams{1, 81.2487, 0.03250}},
	{18, LMSParams{1, 82.2587, 0.03279}},
	{19, LMSParams{1, 83.2418, 0.03310}},
	{20, LMSParams{1, 84.1996, 0.03342}},
	{21, LMSParams{1, 85.1348, 0.03376}},
	{22, LMSParams{1, 86.0477, 0.03410}},
	{23, LMSParams{1, 86.9410, 0.03445}},
	{24, LMSParams{1, 87.8161, 0.03479}},
}

var heightFemale = []ReferenceRow{
	{0, LMSParams{1, 49.1477, 0.03790}},
	{1, LMSParams{1, 53.6872, 0.03640}},
	{2, LMSParams{1, 57.0673, 0.03568}},
	{3, LMSParams{1, 59.8029, 0.03520}},
	{4, LMSParams{1, 62.0899, 0.03486}},
	{5, LMSParams{1, 64.0301, 0.03463}},
	{6, LMSParams{1, 65.7311, 0.03448}},
	{7, LMSParams{1, 67.2873, 0.03441}},
	{8, LMSParams{1, 68.7498, 0.03440}},
	{9, LMSParams{1, 70.1435, 0.03444}},
	{10, LMSParams{1, 71.4818, 0.03452}},
	{11, LMSParams{1, 72.7710, 0.03464}},
	{12, LMSParams{1, 74.0150, 0.03479}},
	{13, LMSParams{1, 75.2176, 0.03496}},
	{14, LMSParams{1, 76.3817, 0.03514}},
	{15, LMSParams{1, 77.5099, 0.03534}},
	{16, LMSParams{1, 78.6055, 0.03555}},
	{17, LMSParams{1, 79.6710, 0.03576}},
	{18, LMSParams{1, 80.7079, 0.03598}},
	{19, LMSParams{1, 81.7182, 0.03620}},
	{20, LMSParams{1, 82.7036, 0.03643}},
	{21, LMSParams{1, 83.6654, 0.03666}},
	{22, LMSParams{1, 84.6040, 0.03688}},
	{23, LMSParams{1, 85.5202, 0.03711}},
	{24, LMSParams{1, 86.4153, 0.03734}},
}

// head-circumference-for-age, centimeters
var headMale = []ReferenceRow{
	{0, LMSParams{1, 34.4618, 0.03686}},
	{1, LMSParams{1, 37.2759, 0.03133}},
	{2, LMSParams{1, 39.1285, 0.02997}},
	{3, LMSParams{1, 40.5135, 0.02918}},
	{4, LMSParams{1, 41.6317, 0.02868}},
	{5, LMSParams{1, 42.5576, 0.02837}},
	{6, LMSParams{1, 43.3306, 0.02817}},
	{7, LMSParams{1, 43.9803, 0.02804}},
	{8, LMSParams{1, 44.5300, 0.02796}},
	{9, LMSParams{1, 44.9998, 0.02792}},
	{10, LMSParams{1, 45.4051, 0.02790}},
	{11, LMSParams{1, 45.7573, 0.02789}},
	{12, LMSParams{1, 46.0661, 0.02789}},
	{13, LMSParams{1, 46.3395, 0.02789}},
	{14, LMSParams{1, 46.5844, 0.02791}},
	{15, LMSParams{1, 46.8060, 0.02792}},
	{16, LMSParams{1, 47.0088, 0.02795}},
	{17, LMSParams{1, 47.1962, 0.02797}},
	{18, LMSParams{1, 47.3711, 0.02800}},
	{19, LMSParams{1, 47.5357, 0.02803}},
	{20, LMSParams{1, 47.6919, 0.02806}},
	{21, LMSParams{1, 47.8408, 0.02810}},
	{22, LMSParams{1, 47.9833, 0.02813}},
	{23, LMSParams{1, 48.1201, 0.02817}},
	{24, LMSParams{1, 48.2515, 0.02821}},
}

var headFemale = []ReferenceRow{
	{0, LMSParams{1, 33.8787, 0.03496}},
	{1, LMSParams{1, 36.5463, 0.03210}},
	{2, LMSParams{1, 38.2521, 0.03168}},
	{3, LMSParams{1, 39.5328, 0.03140}},
	{4, LMSParams{1, 40.5817, 0.03119}},
	{5, LMSParams{1, 41.4590, 0.03102}},
	{6, LMSParams{1, 42.1995, 0.03087}},
	{7, LMSParams{1, 42.8290, 0.03075}},
	{8, LMSParams{1, 43.3671, 0.03063}},
	{9, LMSParams{1, 43.8300, 0.03053}},
	{10, LMSParams{1, 44.2319, 0.03044}},
	{11, LMSParams{1, 44.5844, 0.03035}},
	{12, LMSParams{1, 44.8965, 0.03027}},
	{13, LMSParams{1, 45.1752, 0.03019}},
	{14, LMSParams{1, 45.4265, 0.03012}},
	{15, LMSParams{1, 45.6551, 0.03006}},
	{16, LMSParams{1, 45.8650, 0.02999}},
	{17, LMSParams{1, 46.0598, 0.02994}},
	{18, LMSParams{1, 46.2424, 0.02988}},
	{19, LMSParams{1, 46.4152, 0.02983}},
	{20, LMSParams{1, 46.5801, 0.02978}},
	{21, LMSParams{1, 46.7384, 0.02973}},
	{22, LMSParams{1, 46.8913, 0.02969}},
	{23, LMSParams{1, 47.0391, 0.02965}},
	{24, LMSParams{1, 47.1822, 0.02961}},
}
