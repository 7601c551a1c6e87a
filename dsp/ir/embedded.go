package ir

// Compact factory responses, stored peak-normalized.
var embeddedIRs = []Embedded{
	{
		Name: "4x12 Modern",
		Samples: []float64{
			1.000000, 0.367077, 0.462484, 0.262168, 0.206677, 0.151232, -0.038854, -0.020105,
			-0.046995, -0.046518, -0.224835, -0.168914, -0.185750, 0.002761, 0.029944, -0.033209,
			0.190525, 0.234527, 0.222328, 0.243098, 0.189180, 0.170581, 0.227512, 0.143443,
			0.129862, 0.101992, 0.044406, 0.060283, 0.031896, 0.052575, 0.011874, 0.021836,
			0.016864, 0.043789, 0.045756, 0.053202, 0.124646, 0.141025, 0.143730, 0.143688,
			0.123513, 0.116849, 0.113181, 0.090864, 0.111236, 0.077718, 0.081939, 0.047269,
			0.058762, 0.044944, 0.007868, 0.014662, 0.040686, 0.030322, 0.052491, 0.041863,
			0.040085, 0.062028, 0.070570, 0.060555, 0.057091, 0.061374, 0.071409, 0.061388,
			0.042127, 0.037876, 0.028550, 0.021826, 0.028919, 0.015044, 0.018483, 0.015842,
			0.012714, 0.021394, 0.015970, 0.024864, 0.021390, 0.027165, 0.026713, 0.028284,
			0.035016, 0.032385, 0.026218, 0.028731, 0.020452, 0.018933, 0.019319, 0.015016,
			0.009105, 0.013073, 0.007120, 0.006919, 0.009822, 0.007886, 0.008537, 0.008452,
			0.009570, 0.012637, 0.011786, 0.013539, 0.012562, 0.012443, 0.013458, 0.010787,
			0.009892, 0.009506, 0.006221, 0.005040, 0.006118, 0.005095, 0.003184, 0.002822,
			0.004045, 0.004604, 0.003344, 0.005181, 0.005377, 0.005166, 0.005069, 0.004655,
			0.004534, 0.005734, 0.004367, 0.004589, 0.003513, 0.003703, 0.002908, 0.002095,
		},
	},
	{
		Name: "1x12 Vintage",
		Samples: []float64{
			1.000000, 0.285222, 0.377791, 0.101402, 0.047991, -0.094048, -0.136431, -0.027704,
			-0.180954, -0.046159, -0.002728, 0.100751, 0.263609, 0.197173, 0.238606, 0.189704,
			0.182478, 0.099298, 0.024932, 0.017243, -0.001026, 0.032485, 0.030900, 0.031421,
			0.092087, 0.092169, 0.119011, 0.105983, 0.107428, 0.107504, 0.073710, 0.061747,
			0.044103, 0.027137, 0.025626, 0.021389, 0.035561, 0.049084, 0.041157, 0.066102,
			0.055037, 0.047825, 0.041893, 0.036769, 0.023593, 0.020859, 0.015589, 0.015948,
			0.013622, 0.020836, 0.020895, 0.020783, 0.028037, 0.027146, 0.028148, 0.023827,
			0.021806, 0.013138, 0.010182, 0.011264, 0.004770, 0.008601, 0.008837, 0.006615,
			0.007919, 0.011579, 0.012027, 0.011422, 0.010097, 0.008850, 0.006196, 0.004077,
			0.004243, 0.003907, 0.003604, 0.002832, 0.002324, 0.003033, 0.003814, 0.003748,
			0.003504, 0.003456, 0.003329, 0.002392, 0.001808, 0.001356, 0.000895, 0.001253,
			0.001249, 0.000898, 0.001309, 0.001586, 0.001356, 0.001427, 0.001598, 0.001380,
		},
	},
}
